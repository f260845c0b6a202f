package shell

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedShell is returned by WriteInit for shells without a script.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Shells lists the shells WriteInit supports.
var Shells = []string{"bash", "zsh"}

// commonInit defines the hook and helpers shared by every shell. The hook
// runs "moodctl status --env", which reads the prompt cache and only touches
// the log when the cache is stale.
const commonInit = `# moodctl shell integration
__moodctl_prompt_hook() {
  unset MOODCTL_LATEST MOODCTL_FACE MOODCTL_AVERAGE
  eval "$(command moodctl status --env 2>/dev/null)"
}

# moodctl_prompt_info prints "<today> <streak><icon> <face>" for use in PS1.
moodctl_prompt_info() {
  [ -n "$MOODCTL_TODAY" ] || return 0
  printf '%s %s%s' "$MOODCTL_TODAY" "$MOODCTL_STREAK" "$MOODCTL_STREAK_ICON"
  [ -n "$MOODCTL_FACE" ] && printf ' %s' "$MOODCTL_FACE"
  return 0
}

alias ml='moodctl log'
`

const bashHook = `
if [[ "$PROMPT_COMMAND" != *__moodctl_prompt_hook* ]]; then
  PROMPT_COMMAND="__moodctl_prompt_hook${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi

eval "$(command moodctl completion bash 2>/dev/null)"
`

const zshHook = `
autoload -Uz add-zsh-hook
add-zsh-hook precmd __moodctl_prompt_hook

eval "$(command moodctl completion zsh 2>/dev/null)"
`

// WriteInit writes the integration script for the named shell.
func WriteInit(w io.Writer, shell string) error {
	var hook string
	switch shell {
	case "bash":
		hook = bashHook
	case "zsh":
		hook = zshHook
	default:
		return fmt.Errorf("%w %q (supported: bash, zsh)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, commonInit+hook)
	return err
}
