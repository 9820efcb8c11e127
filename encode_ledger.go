package stashmate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes items from a stream of JSONL data, one JSON object
// per line, and returns a chronologically sorted ledger. Any malformed line
// is an error: the loader decides what a broken file falls back to.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}
		var it Item
		if err := json.Unmarshal(lineBytes, &it); err != nil {
			return nil, fmt.Errorf("could not decode item line %q: %w", string(lineBytes), err)
		}
		ledger.Append(it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// EncodeItem marshals a single item to JSON with canonical key order and
// writes it to the writer followed by a newline, in JSONL format.
func EncodeItem(w io.Writer, it Item) error {
	data, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("failed to marshal item %q: %w", it.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write item: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to a writer in JSONL format, one item per
// line in chronological order with canonical key order, so encoding the same
// ledger twice produces identical bytes.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for _, it := range ledger.items {
		if err := EncodeItem(w, it); err != nil {
			return err
		}
	}
	return nil
}
