package checkout

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

const (
	selectionPromptMessageConstant         = "Several branches share this code. Select one to check out:"
	selectionCanceledErrorTemplateConstant = "branch selection canceled: %w"
)

// SurveyBranchSelector prompts on the terminal for a branch.
type SurveyBranchSelector struct {
	askOptions []survey.AskOpt
}

// NewSurveyBranchSelector constructs a selector. Provide survey.WithStdio to
// redirect the prompt away from the process streams.
func NewSurveyBranchSelector(askOptions ...survey.AskOpt) *SurveyBranchSelector {
	return &SurveyBranchSelector{askOptions: askOptions}
}

// SelectBranch asks the user to choose one of the candidates.
func (selector *SurveyBranchSelector) SelectBranch(candidates []string) (string, error) {
	prompt := &survey.Select{
		Message: selectionPromptMessageConstant,
		Options: candidates,
	}

	var selected string
	if askError := survey.AskOne(prompt, &selected, selector.askOptions...); askError != nil {
		return "", fmt.Errorf(selectionCanceledErrorTemplateConstant, askError)
	}
	return selected, nil
}
