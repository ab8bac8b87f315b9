// Package shared declares the collaborator interfaces that branch and commit
// workflows depend on, so services can be exercised with stub executors.
package shared
