package lambda

import "encoding/json"

// The JSON forms carry an explicit kind tag so consumers can tell the
// node types apart without guessing from field names.

func (t Abs) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Param string `json:"param"`
		Body  Term   `json:"body"`
	}{"abs", t.Param, t.Body})
}

func (t App) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Fn   Term   `json:"fn"`
		Arg  Term   `json:"arg"`
	}{"app", t.Fn, t.Arg})
}

func (t Var) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{"var", t.Name})
}
