package create

import (
	"github.com/spf13/cobra"

	"github.com/temirov/brancher/internal/branches"
)

const (
	commandUseConstant                 = "new <type> <code> <title>"
	commandShortDescriptionConstant    = "Create and check out a convention-compliant branch"
	commandLongDescriptionConstant     = "new creates <type>/<code>_<title> and checks it out. Feature branches start from develop and hotfix branches from master unless --source or --from-current is given."
	commandExampleConstant             = "brancher new feature 1234 login_form\nbrancher new hotfix 77 null_check --source 75\nbrancher new feature 1235 spike --source release/2.0 --literal-source\nbrancher new feature 1236 follow_up --from-current"
	sourceFlagNameConstant             = "source"
	sourceFlagShorthandConstant        = "s"
	sourceFlagUsageConstant            = "Code of the branch to start from, or a special branch name"
	literalSourceFlagNameConstant      = "literal-source"
	literalSourceFlagShorthandConstant = "l"
	literalSourceFlagUsageConstant     = "Treat --source as a literal branch name"
	fromCurrentFlagNameConstant        = "from-current"
	fromCurrentFlagShorthandConstant   = "c"
	fromCurrentFlagUsageConstant       = "Start from the current HEAD"
)

// CommandBuilder assembles the new command.
type CommandBuilder struct {
	branches.CommandDependencies
}

// Build constructs the new command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ExactArgs(3),
		RunE:    builder.run,
	}

	command.Flags().StringP(sourceFlagNameConstant, sourceFlagShorthandConstant, "", sourceFlagUsageConstant)
	command.Flags().BoolP(literalSourceFlagNameConstant, literalSourceFlagShorthandConstant, false, literalSourceFlagUsageConstant)
	command.Flags().BoolP(fromCurrentFlagNameConstant, fromCurrentFlagShorthandConstant, false, fromCurrentFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	source, _ := command.Flags().GetString(sourceFlagNameConstant)
	literalSource, _ := command.Flags().GetBool(literalSourceFlagNameConstant)
	fromCurrent, _ := command.Flags().GetBool(fromCurrentFlagNameConstant)

	runtime, runtimeError := builder.ResolveRuntime(command)
	if runtimeError != nil {
		return runtimeError
	}

	service, serviceError := NewService(ServiceDependencies{
		RepositoryManager: runtime.RepositoryManager,
		Convention:        builder.ResolveConvention(),
		Logger:            builder.ResolveLogger(),
	})
	if serviceError != nil {
		return serviceError
	}

	_, createError := service.Create(command.Context(), Options{
		RepositoryPath: runtime.RepositoryPath,
		BranchType:     arguments[0],
		Code:           arguments[1],
		Title:          arguments[2],
		Source:         source,
		LiteralSource:  literalSource,
		FromCurrent:    fromCurrent,
	})
	return createError
}
