// Package uitest provides test doubles for the ui package.
package uitest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.abhg.dev/git-mergepr/internal/ui"
)

// ScriptView is an [ui.InteractiveView] that simulates user input in tests.
//
// Each prompted field consumes the next scripted answer in order.
// Answers are JSON-encoded values matching the field's value type,
// e.g. "true" for a confirmation, or `"some text"` for a text field.
// They are fed into the field's UnmarshalValue method.
type ScriptView struct {
	answers []string
	pos     int

	out bytes.Buffer
}

var _ ui.InteractiveView = (*ScriptView)(nil)

// NewScriptView builds a ScriptView that will answer prompts
// with the given JSON-encoded values, in order.
func NewScriptView(answers ...string) *ScriptView {
	return &ScriptView{answers: answers}
}

func (v *ScriptView) Write(p []byte) (int, error) {
	return v.out.Write(p)
}

// Output reports everything written to the view so far.
func (v *ScriptView) Output() string {
	return v.out.String()
}

// Prompt feeds the scripted answers into the given fields.
// It fails if there are not enough answers left.
func (v *ScriptView) Prompt(fields ...ui.Field) error {
	for _, f := range fields {
		if v.pos >= len(v.answers) {
			return fmt.Errorf("no scripted answer for field %q", f.Title())
		}

		answer := v.answers[v.pos]
		v.pos++

		err := f.UnmarshalValue(func(dst any) error {
			return json.Unmarshal([]byte(answer), dst)
		})
		if err != nil {
			return fmt.Errorf("field %q: unmarshal %q: %w", f.Title(), answer, err)
		}
	}
	return nil
}
