package errors

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

const width = 78

var reportBugMessage = wordwrap.WrapString(
	"Please try troubleshooting before filing a bug. Attach the debug logs from "+
		color.HiGreenString("depscan <cmd> --debug")+" to any report.", width)

func render(e *Error) string {
	var b strings.Builder

	b.WriteString(color.HiRedString("ERROR: "))
	if e.Message != "" {
		b.WriteString(wordwrap.WrapString(e.Message, width))
	} else if e.Cause != nil {
		b.WriteString(wordwrap.WrapString(e.Cause.Error(), width))
	} else {
		b.WriteString("an unknown error occurred")
	}

	if e.Cause != nil && e.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(color.HiYellowString("CAUSE:"))
		b.WriteString("\n")
		b.WriteString(wordwrap.WrapString(e.Cause.Error(), width))
	}

	if e.Troubleshooting != "" {
		b.WriteString("\n\n")
		b.WriteString(color.HiYellowString("TROUBLESHOOTING:"))
		b.WriteString("\n")
		b.WriteString(wordwrap.WrapString(e.Troubleshooting, width))
	}

	if e.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(wordwrap.WrapString("For more information, see "+color.HiBlueString(e.Link), width))
	}

	if e.Type == Unknown {
		b.WriteString("\n\n")
		b.WriteString(reportBugMessage)
	}

	return b.String()
}
