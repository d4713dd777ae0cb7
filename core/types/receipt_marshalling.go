package types

import (
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

type receiptJSON struct {
	Status            *hexutil.Uint64 `json:"status"`
	CumulativeGasUsed *hexutil.Big    `json:"cumulativeGasUsed"`
	Bloom             *Bloom          `json:"logsBloom"`
	Logs              []*Log          `json:"logs"`
	GasUsedForL1      *hexutil.Uint64 `json:"gasUsedForL1,omitempty"`
}

type logJSON struct {
	Address *Address       `json:"address"`
	Topics  []Hash         `json:"topics"`
	Data    *hexutil.Bytes `json:"data"`
}

// MarshalJSON marshals the receipt with RPC field names.
func (r *Receipt) MarshalJSON() ([]byte, error) {
	status := hexutil.Uint64(r.StatusCode())
	logs := r.Logs
	if logs == nil {
		logs = []*Log{}
	}
	return json.Marshal(&receiptJSON{
		Status:            &status,
		CumulativeGasUsed: (*hexutil.Big)(r.CumulativeGasUsed.ToBig()),
		Bloom:             &r.Bloom,
		Logs:              logs,
		GasUsedForL1:      (*hexutil.Uint64)(r.GasUsedForL1),
	})
}

// UnmarshalJSON unmarshals a receipt. Status, cumulativeGasUsed, logsBloom
// and logs are required.
func (r *Receipt) UnmarshalJSON(input []byte) error {
	var dec receiptJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Status == nil {
		return errors.New("missing required field 'status' for Receipt")
	}
	if dec.CumulativeGasUsed == nil {
		return errors.New("missing required field 'cumulativeGasUsed' for Receipt")
	}
	if dec.Bloom == nil {
		return errors.New("missing required field 'logsBloom' for Receipt")
	}
	if dec.Logs == nil {
		return errors.New("missing required field 'logs' for Receipt")
	}
	switch uint64(*dec.Status) {
	case ReceiptStatusSuccessful:
		r.Status = true
	case ReceiptStatusFailed:
		r.Status = false
	default:
		return errors.New("invalid receipt status")
	}
	gas, overflow := uint256.FromBig(dec.CumulativeGasUsed.ToInt())
	if overflow || gas.ByteLen() > maxGasBytes {
		return ErrGasRange
	}
	r.CumulativeGasUsed = *gas
	r.Bloom = *dec.Bloom
	r.Logs = dec.Logs
	if len(r.Logs) == 0 {
		r.Logs = nil
	}
	r.GasUsedForL1 = (*uint64)(dec.GasUsedForL1)
	return nil
}

// MarshalJSON marshals the log's consensus fields.
func (l *Log) MarshalJSON() ([]byte, error) {
	topics := l.Topics
	if topics == nil {
		topics = []Hash{}
	}
	return json.Marshal(&logJSON{
		Address: &l.Address,
		Topics:  topics,
		Data:    (*hexutil.Bytes)(&l.Data),
	})
}

// UnmarshalJSON unmarshals a log. All three fields are required.
func (l *Log) UnmarshalJSON(input []byte) error {
	var dec logJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	if dec.Address == nil {
		return errors.New("missing required field 'address' for Log")
	}
	if dec.Topics == nil {
		return errors.New("missing required field 'topics' for Log")
	}
	if dec.Data == nil {
		return errors.New("missing required field 'data' for Log")
	}
	l.Address = *dec.Address
	l.Topics = dec.Topics
	if len(l.Topics) == 0 {
		l.Topics = nil
	}
	l.Data = *dec.Data
	if len(l.Data) == 0 {
		l.Data = nil
	}
	return nil
}
