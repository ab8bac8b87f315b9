package checkout

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/temirov/brancher/internal/branches"
)

const (
	commandUseConstant              = "checkout <code|special-branch>"
	commandShortDescriptionConstant = "Check out a branch by its code"
	commandLongDescriptionConstant  = "checkout switches to the branch whose code matches the argument, or to a special branch such as develop, main or master given by name. When several branches share the code the first listed one wins unless --pick is set."
	commandExampleConstant          = "brancher checkout 1234\nbrancher checkout develop\nbrancher checkout 1234 --pick"
	pickFlagNameConstant            = "pick"
	pickFlagShorthandConstant       = "p"
	pickFlagUsageConstant           = "Choose interactively when several branches share the code"
)

// TerminalDetector reports whether interactive prompts can be shown.
type TerminalDetector func() bool

// CommandBuilder assembles the checkout command.
type CommandBuilder struct {
	branches.CommandDependencies
	Selector         BranchSelector
	TerminalDetector TerminalDetector
}

// Build constructs the checkout command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ExactArgs(1),
		RunE:    builder.run,
	}

	command.Flags().BoolP(pickFlagNameConstant, pickFlagShorthandConstant, false, pickFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	pick, _ := command.Flags().GetBool(pickFlagNameConstant)

	runtime, runtimeError := builder.ResolveRuntime(command)
	if runtimeError != nil {
		return runtimeError
	}

	service, serviceError := NewService(ServiceDependencies{
		RepositoryManager: runtime.RepositoryManager,
		Convention:        builder.ResolveConvention(),
		Selector:          builder.resolveSelector(pick),
	})
	if serviceError != nil {
		return serviceError
	}

	_, checkoutError := service.Checkout(command.Context(), Options{
		RepositoryPath: runtime.RepositoryPath,
		Target:         arguments[0],
		Pick:           pick,
	})
	return checkoutError
}

func (builder *CommandBuilder) resolveSelector(pick bool) BranchSelector {
	if !pick {
		return nil
	}
	if builder.Selector != nil {
		return builder.Selector
	}
	if !builder.resolveTerminalDetector()() {
		return nil
	}
	return NewSurveyBranchSelector()
}

func (builder *CommandBuilder) resolveTerminalDetector() TerminalDetector {
	if builder.TerminalDetector != nil {
		return builder.TerminalDetector
	}
	return standardStreamsAreTerminal
}

func standardStreamsAreTerminal() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(descriptor uintptr) bool {
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}
