package store

import (
	"encoding/json"
	"os"
	"time"

	"github.com/walletscope/walletscope/pkg/errors"
	"github.com/walletscope/walletscope/pkg/model"
)

// WriteBatchFile writes the wallet's records as an indented JSON batch,
// the same shape the MongoDB archive stores. Files written this way can
// be passed to the score and export commands in place of an address.
func WriteBatchFile(path, wallet string, records []model.TransferRecord) error {
	batch := Batch{
		Wallet:    wallet,
		FetchedAt: time.Now().UTC(),
		Records:   records,
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding batch for %s", wallet)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
	}
	return nil
}

// ReadBatchFile loads a batch written by WriteBatchFile.
func ReadBatchFile(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "batch file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}

	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parsing %s", path)
	}
	return &batch, nil
}
