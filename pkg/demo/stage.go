package demo

import (
	"encoding/json"
	"fmt"
)

// Stage is how far the community cards have been revealed
type Stage int

// Stage constants
const (
	StagePreFlop Stage = iota
	StageFlop
	StageTurn
	StageRiver
)

func (s Stage) String() string {
	switch s {
	case StagePreFlop:
		return "pre-flop"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	}

	return fmt.Sprintf("stage-%d", int(s))
}

// MarshalJSON encodes JSON
func (s Stage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// UnmarshalJSON accepts either the encoded object or the bare stage number
func (s *Stage) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err == nil {
		*s = Stage(id)
		return nil
	}

	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	*s = Stage(obj.ID)
	return nil
}
