package list

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/temirov/brancher/internal/branches"
)

const (
	commandUseConstant              = "ls"
	commandShortDescriptionConstant = "List branches sorted by name"
	commandLongDescriptionConstant  = "ls prints every local and remote-tracking branch, sorted case-insensitively, one per line. On a terminal the current branch is highlighted."
)

// TerminalDetector reports whether the writer is an interactive terminal.
type TerminalDetector func(writer io.Writer) bool

// CommandBuilder assembles the ls command.
type CommandBuilder struct {
	branches.CommandDependencies
	TerminalDetector TerminalDetector
}

// Build constructs the ls command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	runtime, runtimeError := builder.ResolveRuntime(command)
	if runtimeError != nil {
		return runtimeError
	}

	service, serviceError := NewService(runtime.RepositoryManager)
	if serviceError != nil {
		return serviceError
	}

	output := command.OutOrStdout()
	highlight := builder.resolveTerminalDetector()(output)

	result, listError := service.List(command.Context(), Options{
		RepositoryPath: runtime.RepositoryPath,
		IncludeCurrent: highlight,
	})
	if listError != nil {
		return listError
	}

	return NewRenderer(output, highlight).Render(result)
}

func (builder *CommandBuilder) resolveTerminalDetector() TerminalDetector {
	if builder.TerminalDetector != nil {
		return builder.TerminalDetector
	}
	return writerIsTerminal
}

func writerIsTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
