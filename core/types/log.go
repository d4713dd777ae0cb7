package types

import (
	"slices"

	"github.com/arbwire/arbwire/rlp"
)

// Log is an event emitted during execution. Only consensus fields are held.
type Log struct {
	Address Address
	Topics  []Hash
	Data    []byte
}

// LogFilter selects logs by emitter and topic position.
//   - Addresses is empty OR the log address is in Addresses.
//   - For each position i in Topics: Topics[i] is empty (wildcard)
//     OR the log's topic at position i is in Topics[i].
type LogFilter struct {
	Addresses []Address
	Topics    [][]Hash
}

// EncodeRLP returns [address, [topic, ...], data].
func (l *Log) EncodeRLP() []byte {
	return l.appendRLP(make([]byte, 0, l.encodingSize()))
}

func (l *Log) payloadSize() int {
	return addressSize + rlp.ListSize(len(l.Topics)*hashSize) + rlp.BytesSize(l.Data)
}

func (l *Log) encodingSize() int {
	return rlp.ListSize(l.payloadSize())
}

func (l *Log) appendRLP(dst []byte) []byte {
	dst = rlp.AppendListHeader(dst, l.payloadSize())
	dst = rlp.AppendBytes(dst, l.Address[:])
	dst = rlp.AppendListHeader(dst, len(l.Topics)*hashSize)
	for i := range l.Topics {
		dst = rlp.AppendBytes(dst, l.Topics[i][:])
	}
	return rlp.AppendBytes(dst, l.Data)
}

// DecodeLog decodes one log from the start of b and returns it with the
// number of bytes consumed.
func DecodeLog(b []byte) (*Log, int, error) {
	s := rlp.NewStreamFromBytes(b)
	l, err := decodeLog(s)
	if err != nil {
		return nil, 0, err
	}
	return l, s.Pos(), nil
}

func decodeLog(s *rlp.Stream) (*Log, error) {
	if _, err := s.List(); err != nil {
		return nil, err
	}
	var (
		l   Log
		err error
	)
	if l.Address, err = decodeAddress(s); err != nil {
		return nil, err
	}
	if _, err := s.List(); err != nil {
		return nil, err
	}
	for !s.AtListEnd() {
		topic, err := s.Bytes()
		if err != nil {
			return nil, err
		}
		if len(topic) != HashLength {
			return nil, ErrTopicLength
		}
		l.Topics = append(l.Topics, BytesToHash(topic))
	}
	if err := s.ListEnd(); err != nil {
		return nil, err
	}
	if l.Data, err = decodeData(s); err != nil {
		return nil, err
	}
	if err := s.ListEnd(); err != nil {
		return nil, err
	}
	return &l, nil
}

// FilterMatch returns true if the log satisfies the given filter criteria.
func FilterMatch(l *Log, f *LogFilter) bool {
	if l == nil || f == nil {
		return false
	}
	if len(f.Addresses) > 0 && !slices.Contains(f.Addresses, l.Address) {
		return false
	}
	for i, topicSet := range f.Topics {
		if len(topicSet) == 0 {
			continue
		}
		if i >= len(l.Topics) || !slices.Contains(topicSet, l.Topics[i]) {
			return false
		}
	}
	return true
}

// FilterLogs returns the logs matching f.
func FilterLogs(logs []*Log, f *LogFilter) []*Log {
	if f == nil || len(logs) == 0 {
		return nil
	}
	var result []*Log
	for _, l := range logs {
		if FilterMatch(l, f) {
			result = append(result, l)
		}
	}
	return result
}
