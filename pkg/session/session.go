// Package session tracks recently viewed wallets across CLI runs.
//
// Each time a wallet is opened in the viewer, an entry is recorded with a
// unique ID and the number of transfers seen. The history backs the
// interactive wallet picker and the `walletscope recent` command, so a user
// can reopen a wallet without pasting the address again.
//
// # Usage
//
//	history, err := session.NewHistory("") // ~/.config/walletscope/history.json
//	if err != nil {
//	    return err
//	}
//	history.Record("4Nd1...Kp8L", 42)
//
//	entries, err := history.Recent()
package session

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntries is the number of wallets the history retains. Recording a new
// wallet beyond this drops the oldest entry.
const MaxEntries = 20

// Entry is one remembered wallet.
type Entry struct {
	ID        string    `json:"id"`
	Wallet    string    `json:"wallet"`
	Transfers int       `json:"transfers"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// NewEntry creates an entry for the wallet with a fresh unique ID.
func NewEntry(wallet string, transfers int) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Wallet:    wallet,
		Transfers: transfers,
		ViewedAt:  time.Now().UTC(),
	}
}
