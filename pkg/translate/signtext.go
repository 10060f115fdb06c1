package translate

import "strings"

// In-band sign protocol control bytes. Message text arrives from the
// launch UI carrying the control sequences physical signs consume; the
// appliance only understands a small markup set, so everything else is
// translated or dropped.
const (
	signCommand = 0x01

	signSpeed          = 'S'
	signConfigure      = 'C'
	signFont           = 'F'
	signDateEmbed      = 'D'
	signTimeEmbed      = 'T'
	signSignatureEmbed = 'G'
	signAuthorityEmbed = 'U'
	signMode           = 'M'
	signSequence       = 'Q'
	signFColor         = 'K'
	signBColor         = 'B'
	signJustify        = 'J'
	signTimeSet        = 'Z'

	signBlockCharacter = 0x7f
)

// Sign color codes and their appliance markup names. Colors outside this
// set have no appliance equivalent and emit nothing.
var signColorNames = map[byte]string{
	'1': "red",
	'2': "green",
	'3': "amber",
	'4': "yellow",
	'5': "orange",
	'6': "black",
}

// substituteSignatureText replaces signature graphics, which the
// appliance cannot render.
const substituteSignatureText = "|X|"

// Text converts sign-protocol message text into appliance-safe text.
// Color changes become {color=X} / {bgcolor=X} tokens, signature embeds
// become the substitute marker, carriage returns and block characters
// are dropped, and the remaining control sequences are consumed without
// output. A sequence control terminates the message.
func Text(in string) string {
	var out strings.Builder
	fgColor := byte(0)
	bgColor := byte(0)

	i := 0
	for i < len(in) {
		c := in[i]
		switch c {
		case signCommand:
			i++
			if i >= len(in) {
				return out.String()
			}
			cmd := in[i]
			i++
			switch cmd {
			case signSpeed, signFont, signMode, signJustify, signAuthorityEmbed, signFColor, signBColor:
				// These take one argument byte.
				if i >= len(in) {
					return out.String()
				}
				arg := in[i]
				i++
				switch cmd {
				case signFColor:
					if arg != fgColor {
						if name, ok := signColorNames[arg]; ok {
							out.WriteString("{color=" + name + "}")
						}
					}
					fgColor = arg
				case signBColor:
					if arg != bgColor {
						if name, ok := signColorNames[arg]; ok {
							out.WriteString("{bgcolor=" + name + "}")
						}
					}
					bgColor = arg
				}
				// Speed, font, mode, and justify have no appliance
				// equivalent; the argument is consumed and dropped.
			case signSignatureEmbed:
				if i < len(in) {
					i++
				}
				out.WriteString(substituteSignatureText)
			case signSequence:
				// End of displayable text.
				return out.String()
			case signConfigure, signDateEmbed, signTimeEmbed, signTimeSet:
				// Nothing to send.
			default:
				// Unknown control, skip.
			}
		case '\r':
			i++
		case signBlockCharacter:
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}
