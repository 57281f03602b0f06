package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Правила стиля, в порядке их проверки на строке
	StyleTab        Code = 1001
	StyleCR         Code = 1002
	StyleLineLength Code = 1003
)

var codeDescription = map[Code]string{
	UnknownCode:     "unknown diagnostic",
	StyleTab:        "tab character in indentation-sensitive context",
	StyleCR:         "carriage return in a non-CRLF checkout",
	StyleLineLength: "line exceeds the column limit",
}

// ID returns the stable short identifier used in output, e.g. "T0001".
func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("T%04d", ic-1000)
	}
	return fmt.Sprintf("X%04d", int(c))
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
