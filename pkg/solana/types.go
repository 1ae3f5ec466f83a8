package solana

import (
	"encoding/json"
	"time"

	"github.com/walletscope/walletscope/pkg/model"
)

// SignatureInfo is one entry of a getSignaturesForAddress response.
type SignatureInfo struct {
	Signature string `json:"signature"`
	Slot      uint64 `json:"slot"`
	BlockTime *int64 `json:"blockTime,omitempty"`
	Err       any    `json:"err,omitempty"`
}

// TransactionDetail is the jsonParsed getTransaction response, reduced to
// the fields the transfer extraction needs.
type TransactionDetail struct {
	BlockTime   *int64 `json:"blockTime,omitempty"`
	Slot        uint64 `json:"slot"`
	Transaction struct {
		Message struct {
			Instructions []Instruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
	Meta *TransactionMeta `json:"meta,omitempty"`
}

// TransactionMeta carries execution results and inner instructions.
type TransactionMeta struct {
	Err               any `json:"err,omitempty"`
	InnerInstructions []struct {
		Instructions []Instruction `json:"instructions"`
	} `json:"innerInstructions,omitempty"`
}

// Instruction is a single jsonParsed instruction. Parsed is only populated
// for programs the RPC node knows how to decode, such as the system program.
type Instruction struct {
	Program string          `json:"program,omitempty"`
	Parsed  json.RawMessage `json:"parsed,omitempty"`
}

// parsedTransfer is the system-program decoding of a transfer instruction.
type parsedTransfer struct {
	Type string `json:"type"`
	Info struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
		Lamports    uint64 `json:"lamports"`
	} `json:"info"`
}

// Transfers extracts the SOL transfers executed by the transaction,
// covering both top-level and inner system-program instructions. Failed
// transactions yield nothing.
func (tx *TransactionDetail) Transfers() []model.TransferRecord {
	if tx.Meta != nil && tx.Meta.Err != nil {
		return nil
	}

	var ts time.Time
	if tx.BlockTime != nil {
		ts = time.Unix(*tx.BlockTime, 0).UTC()
	}

	var records []model.TransferRecord
	collect := func(instructions []Instruction) {
		for _, in := range instructions {
			rec, ok := transferRecord(in, ts)
			if ok {
				records = append(records, rec)
			}
		}
	}

	collect(tx.Transaction.Message.Instructions)
	if tx.Meta != nil {
		for _, inner := range tx.Meta.InnerInstructions {
			collect(inner.Instructions)
		}
	}
	return records
}

func transferRecord(in Instruction, ts time.Time) (model.TransferRecord, bool) {
	if in.Program != "system" || len(in.Parsed) == 0 {
		return model.TransferRecord{}, false
	}

	var parsed parsedTransfer
	if err := json.Unmarshal(in.Parsed, &parsed); err != nil {
		return model.TransferRecord{}, false
	}
	if parsed.Type != "transfer" && parsed.Type != "transferWithSeed" {
		return model.TransferRecord{}, false
	}
	if parsed.Info.Source == "" || parsed.Info.Destination == "" {
		return model.TransferRecord{}, false
	}

	amount := float64(parsed.Info.Lamports) / LamportsPerSOL
	return model.TransferRecord{
		Sender:    parsed.Info.Source,
		Recipient: parsed.Info.Destination,
		Label:     model.FormatLabel(amount, ts),
	}, true
}
