package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	errs "github.com/waspothegreat/gitea-go/pkg/errors"
)

// errorHint returns a follow-up suggestion for a failed command, or "".
func errorHint(err error) string {
	switch errs.GetCode(err) {
	case errs.ErrCodeUnauthorized:
		return "the token was rejected; run '" + appName + " login' with a valid token"
	case errs.ErrCodeConfiguration:
		return "run '" + appName + " login --url <server> --token <token>'"
	case errs.ErrCodeNotFound:
		return "check the spelling, or whether your token can see the resource"
	case errs.ErrCodeTransport:
		return "the server could not be reached; check --url and your network"
	}
	return ""
}

// PrintError writes err in the CLI's error style to w, with a hint for
// known failure categories.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errs.UserMessage(err))
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(w, "  "+styleDim.Render(hint))
	}
}
