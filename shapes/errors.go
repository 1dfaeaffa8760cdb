package shapes

import (
	"errors"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/layout"
)

// Sentinel errors wrapped by UsageError. Test with errors.Is.
var (
	// ErrNotEditable is returned when erase or replace is called on a
	// container that is not in editable mode.
	ErrNotEditable = errors.New("shapes: container is not editable")

	// ErrArrayMember is returned when an operation is applied to a handle
	// of a single array member.
	ErrArrayMember = errors.New("shapes: operation not permitted on array members")

	// ErrInvalidShape is returned for null handles and handles of erased shapes.
	ErrInvalidShape = errors.New("shapes: invalid shape handle")

	// ErrForeignShape is returned when a handle belongs to another container.
	ErrForeignShape = errors.New("shapes: shape belongs to another container")

	// ErrEraseOrder is returned when a batch of handles is not sorted.
	ErrEraseOrder = errors.New("shapes: shapes to erase are not sorted")
)

// Message keys of the usage error catalog. The English text doubles as key.
const (
	msgNotEditable  = "Function '%s' is permitted only in editable mode"
	msgArrayMember  = "Function '%s' is not permitted on array members"
	msgInvalidShape = "Function '%s' requires a valid shape"
	msgForeignShape = "Function '%s' requires a shape of this container"
	msgEraseOrder   = "Function '%s' requires shapes sorted in ascending order"
)

var messageKeys = map[error]string{
	ErrNotEditable:  msgNotEditable,
	ErrArrayMember:  msgArrayMember,
	ErrInvalidShape: msgInvalidShape,
	ErrForeignShape: msgForeignShape,
	ErrEraseOrder:   msgEraseOrder,
}

func init() {
	catalog := []struct {
		tag language.Tag
		key string
		msg string
	}{
		{language.English, msgNotEditable, msgNotEditable},
		{language.English, msgArrayMember, msgArrayMember},
		{language.English, msgInvalidShape, msgInvalidShape},
		{language.English, msgForeignShape, msgForeignShape},
		{language.English, msgEraseOrder, msgEraseOrder},
		{language.German, msgNotEditable, "Funktion '%s' ist nur im editierbaren Modus erlaubt"},
		{language.German, msgArrayMember, "Funktion '%s' ist für Array-Elemente nicht erlaubt"},
		{language.German, msgInvalidShape, "Funktion '%s' benötigt ein gültiges Shape"},
		{language.German, msgForeignShape, "Funktion '%s' benötigt ein Shape dieses Containers"},
		{language.German, msgEraseOrder, "Funktion '%s' benötigt aufsteigend sortierte Shapes"},
	}
	for _, m := range catalog {
		if err := message.SetString(m.tag, m.key, m.msg); err != nil {
			panic(err)
		}
	}
	printer.Store(message.NewPrinter(language.English))
}

var printer atomic.Pointer[message.Printer]

// SetMessageLanguage selects the language of usage error messages.
// English and German are available; other tags fall back to English.
func SetMessageLanguage(tag language.Tag) {
	printer.Store(message.NewPrinter(tag))
}

// UsageError reports an operation called in a state that does not permit
// it, such as erase on a container that is not editable.
type UsageError struct {
	Func string // name of the rejected operation, e.g. "erase"
	Err  error  // one of the sentinel errors
}

// Error returns the localized message.
func (e *UsageError) Error() string {
	key, ok := messageKeys[e.Err]
	if !ok {
		return e.Func + ": " + e.Err.Error()
	}
	return printer.Load().Sprintf(key, e.Func)
}

// Unwrap returns the sentinel error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageError(fn string, err error) error {
	e := &UsageError{Func: fn, Err: err}
	layout.Logger().Warn("shapes: usage error", "func", fn, "err", err)
	return e
}
