package console

// Button is the navigation meaning of one raw keystroke.
type Button int

const (
	ButtonInvalid Button = iota
	ButtonUp
	ButtonDown
	ButtonToggle
	ButtonSubmit
	ButtonBackspace
	ButtonNumeral
	ButtonExit
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonToggle:
		return "toggle"
	case ButtonSubmit:
		return "submit"
	case ButtonBackspace:
		return "backspace"
	case ButtonNumeral:
		return "numeral"
	case ButtonExit:
		return "exit"
	}
	return "invalid"
}

// ButtonFor maps a raw input code to its navigation meaning. The table is
// fixed: w/W up, s/S down, space toggle, LF/CR submit, BS/DEL backspace,
// digits numeral, ETX/CAN exit, everything else invalid.
func ButtonFor(code int) Button {
	switch code {
	case 'w', 'W':
		return ButtonUp
	case 's', 'S':
		return ButtonDown
	case ' ':
		return ButtonToggle
	case 10, 13:
		return ButtonSubmit
	case 8, 127:
		return ButtonBackspace
	case 3, 24:
		return ButtonExit
	}
	if code >= '0' && code <= '9' {
		return ButtonNumeral
	}
	return ButtonInvalid
}
