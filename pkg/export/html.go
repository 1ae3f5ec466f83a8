package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/walletscope/walletscope/pkg/model"
)

// HTMLOptions configures interactive HTML generation.
type HTMLOptions struct {
	Title string // Page title; defaults to the wallet address.
	Path  string // Output path; ".html" is appended when missing.
}

// WriteHTML writes a self-contained interactive page for the document.
// The page embeds the graph data and needs no network access or external
// scripts. Returns the path written.
func WriteHTML(doc *Document, opts HTMLOptions) (string, error) {
	if len(doc.Nodes) == 0 {
		return "", fmt.Errorf("no nodes to export")
	}

	title := opts.Title
	if title == "" {
		title = doc.Wallet
	}

	path := opts.Path
	if path == "" {
		path = fmt.Sprintf("%s.html", model.TruncateKey(doc.Wallet, 10))
	}
	if !strings.HasSuffix(strings.ToLower(path), ".html") {
		path += ".html"
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal graph data: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, map[string]any{
		"Title": title,
		"Data":  template.JS(data),
		"Nodes": len(doc.Nodes),
		"Edges": len(doc.Edges),
		"Score": doc.Score,
	})
	if err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// HTML returns the interactive page as a byte slice instead of writing a
// file. Used by the HTTP server.
func HTML(doc *Document, title string) ([]byte, error) {
	if title == "" {
		title = doc.Wallet
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal graph data: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, map[string]any{
		"Title": title,
		"Data":  template.JS(data),
		"Nodes": len(doc.Nodes),
		"Edges": len(doc.Edges),
		"Score": doc.Score,
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// The page mirrors the native viewer: model coordinates scaled by 200,
// zoom clamped to [0.1, 10] in steps of 1.1 around the cursor, 15px hit
// radius, and an insertion-order transaction panel on click.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} | walletscope</title>
<style>
  :root {
    --bg: #16181d;
    --panel: #22252e;
    --fg: #e8eaf0;
    --muted: #8a90a3;
    --accent: #7aa2f7;
    --warn: #f7768e;
  }
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: ui-monospace, Menlo, Consolas, monospace;
    background: var(--bg);
    color: var(--fg);
    height: 100vh;
    display: flex;
    flex-direction: column;
    overflow: hidden;
  }
  header {
    background: var(--panel);
    padding: 0.5rem 1rem;
    display: flex;
    justify-content: space-between;
    border-bottom: 1px solid var(--accent);
  }
  header .meta { color: var(--muted); font-size: 0.8rem; }
  #graph { flex: 1; cursor: grab; }
  #graph.dragging { cursor: grabbing; }
</style>
</head>
<body>
<header>
  <div>{{.Title}}</div>
  <div class="meta">{{.Nodes}} wallets · {{.Edges}} transfers{{if .Score}} · credit {{.Score}}/1000{{end}}</div>
</header>
<canvas id="graph"></canvas>
<script>
const DATA = {{.Data}};
const SCALE = 200, MIN_ZOOM = 0.1, MAX_ZOOM = 10, ZOOM_STEP = 1.1;
const HIT_RADIUS = 15, NODE_RADIUS = 10, GLOW_LAYERS = 5;

const canvas = document.getElementById('graph');
const ctx = canvas.getContext('2d');
const byId = {};
DATA.nodes.forEach(n => byId[n.id] = n);

let zoom = 1, offsetX = 0, offsetY = 0;
let dragging = false, moved = false, lastX = 0, lastY = 0;
let selected = null, showCredit = false;

function resize() {
  canvas.width = canvas.clientWidth;
  canvas.height = canvas.clientHeight;
  draw();
}

function apply(x, y) {
  return [x * SCALE * zoom + offsetX, y * SCALE * zoom + offsetY];
}

function transactionsFor(id) {
  const out = [];
  DATA.edges.forEach(e => {
    if (e.from === id) out.push('Sent to ' + e.to.slice(0, 6) + '... — ' + e.label);
    if (e.to === id) out.push('Received from ' + e.from.slice(0, 6) + '... — ' + e.label);
  });
  return out;
}

function draw() {
  ctx.fillStyle = getComputedStyle(document.body).getPropertyValue('--bg');
  ctx.fillRect(0, 0, canvas.width, canvas.height);

  ctx.strokeStyle = 'rgba(122,162,247,0.35)';
  ctx.lineWidth = 1.5;
  DATA.edges.forEach(e => {
    const a = byId[e.from], b = byId[e.to];
    if (!a || !b) return;
    const [x1, y1] = apply(a.x, a.y), [x2, y2] = apply(b.x, b.y);
    ctx.beginPath();
    ctx.moveTo(x1, y1);
    ctx.lineTo(x2, y2);
    ctx.stroke();
  });

  DATA.nodes.forEach(n => {
    const [x, y] = apply(n.x, n.y);
    for (let i = GLOW_LAYERS; i >= 1; i--) {
      ctx.fillStyle = 'rgba(122,162,247,' + (0.05 * (GLOW_LAYERS - i + 1)) + ')';
      ctx.beginPath();
      ctx.arc(x, y, NODE_RADIUS + i * 3, 0, Math.PI * 2);
      ctx.fill();
    }
    ctx.fillStyle = n.id === (selected && selected.id) ? '#f7cf68' : '#7aa2f7';
    ctx.beginPath();
    ctx.arc(x, y, NODE_RADIUS, 0, Math.PI * 2);
    ctx.fill();
    ctx.fillStyle = '#e8eaf0';
    ctx.font = '12px ui-monospace, monospace';
    ctx.fillText(n.id.slice(0, 4) + '...', x + 12, y - 12);
  });

  if (selected) {
    const lines = transactionsFor(selected.id).slice(0, 9);
    const w = 380, h = 24 + 18 * (lines.length + 1);
    ctx.fillStyle = 'rgba(34,37,46,0.92)';
    ctx.fillRect(12, 12, w, h);
    ctx.fillStyle = '#e8eaf0';
    ctx.font = 'bold 13px ui-monospace, monospace';
    ctx.fillText(selected.id.slice(0, 10) + '...', 24, 34);
    ctx.font = '12px ui-monospace, monospace';
    lines.forEach((line, i) => ctx.fillText(line, 24, 52 + i * 18));
  }

  ctx.fillStyle = 'rgba(34,37,46,0.92)';
  ctx.fillRect(20, canvas.height - 60, 160, 40);
  ctx.fillStyle = '#e8eaf0';
  ctx.font = '13px ui-monospace, monospace';
  ctx.fillText(showCredit ? 'Credit: on' : 'Credit: off', 36, canvas.height - 36);
  if (showCredit && DATA.score) {
    ctx.fillStyle = DATA.score < 400 ? '#f7768e' : '#9ece6a';
    ctx.fillText('Credit score: ' + DATA.score + ' / 1000', 200, canvas.height - 36);
  }
}

function nodeAt(px, py) {
  for (const n of DATA.nodes) {
    const [x, y] = apply(n.x, n.y);
    if (Math.hypot(px - x, py - y) <= HIT_RADIUS) return n;
  }
  return null;
}

canvas.addEventListener('mousedown', e => {
  if (e.button !== 0) return;
  dragging = true;
  moved = false;
  lastX = e.offsetX;
  lastY = e.offsetY;
  canvas.classList.add('dragging');
});

canvas.addEventListener('mousemove', e => {
  if (!dragging) return;
  const dx = e.offsetX - lastX, dy = e.offsetY - lastY;
  if (Math.abs(dx) + Math.abs(dy) > 1) moved = true;
  offsetX += dx;
  offsetY += dy;
  lastX = e.offsetX;
  lastY = e.offsetY;
  draw();
});

canvas.addEventListener('mouseup', e => {
  if (e.button !== 0) return;
  dragging = false;
  canvas.classList.remove('dragging');
  if (moved) return;
  if (e.offsetX >= 20 && e.offsetX <= 180 && e.offsetY >= canvas.height - 60 && e.offsetY <= canvas.height - 20) {
    showCredit = !showCredit;
  } else {
    const n = nodeAt(e.offsetX, e.offsetY);
    if (n) selected = n;
  }
  draw();
});

canvas.addEventListener('contextmenu', e => {
  e.preventDefault();
  selected = null;
  draw();
});

canvas.addEventListener('wheel', e => {
  e.preventDefault();
  const factor = Math.pow(ZOOM_STEP, -Math.sign(e.deltaY));
  const next = Math.min(MAX_ZOOM, Math.max(MIN_ZOOM, zoom * factor));
  offsetX = e.offsetX - (next / zoom) * (e.offsetX - offsetX);
  offsetY = e.offsetY - (next / zoom) * (e.offsetY - offsetY);
  zoom = next;
  draw();
}, { passive: false });

window.addEventListener('resize', resize);
offsetX = window.innerWidth / 2;
offsetY = window.innerHeight / 2;
resize();
</script>
</body>
</html>
`))
