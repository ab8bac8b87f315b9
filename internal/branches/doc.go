// Package branches holds the collaborators shared by the branch commands.
//
// The checkout, create and list subpackages each expose a CommandBuilder that
// embeds CommandDependencies and a Service working against a
// shared.GitRepositoryManager.
package branches
