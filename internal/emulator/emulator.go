package emulator

import (
	"encoding/json"
	"fmt"
)

// Emulator describes a detected terminal emulator and how to invoke it.
// It is an immutable value; construct it with New or NativeAPI.
type Emulator struct {
	name   string
	path   string
	syntax ExecutionSyntax
	method DetectionMethod
}

// New creates an Emulator that is invoked by spawning the executable at path.
func New(name, path string, syntax ExecutionSyntax, method DetectionMethod) Emulator {
	return Emulator{
		name:   name,
		path:   path,
		syntax: syntax,
		method: method,
	}
}

// NativeAPI creates an Emulator that uses the platform's console facility.
// Such an emulator has no executable path.
func NativeAPI(name string, method DetectionMethod) Emulator {
	return Emulator{
		name:   name,
		syntax: SyntaxNativeAPI,
		method: method,
	}
}

// Name returns the human-readable identifier of the emulator.
func (e Emulator) Name() string { return e.name }

// Path returns the executable path. It is empty for SyntaxNativeAPI.
func (e Emulator) Path() string { return e.path }

// Syntax returns how a command is passed to the emulator.
func (e Emulator) Syntax() ExecutionSyntax { return e.syntax }

// Method returns the detection method that produced the emulator.
func (e Emulator) Method() DetectionMethod { return e.method }

// IsNativeAPI reports whether the emulator uses the platform console facility
// instead of a spawned process.
func (e Emulator) IsNativeAPI() bool { return e.syntax == SyntaxNativeAPI }

func (e Emulator) String() string {
	if e.IsNativeAPI() {
		return fmt.Sprintf("%s (%s, %s)", e.name, e.method, e.syntax)
	}

	return fmt.Sprintf("%s at %s (%s, %s)", e.name, e.path, e.method, e.syntax)
}

// Document is the serialized form of an Emulator.
type Document struct {
	Name   string          `json:"name" yaml:"name"`
	Path   string          `json:"path,omitempty" yaml:"path,omitempty"`
	Syntax ExecutionSyntax `json:"syntax" yaml:"syntax"`
	Method DetectionMethod `json:"method" yaml:"method"`
}

// Document returns the serialized form of the emulator.
func (e Emulator) Document() Document {
	return Document{
		Name:   e.name,
		Path:   e.path,
		Syntax: e.syntax,
		Method: e.method,
	}
}

// MarshalJSON implements json.Marshaler.
func (e Emulator) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Document())
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Emulator) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode emulator: %w", err)
	}

	*e = New(doc.Name, doc.Path, doc.Syntax, doc.Method)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Emulator) MarshalYAML() (any, error) {
	return e.Document(), nil
}
