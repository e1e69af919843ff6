// Package scaffold lays down the project skeleton: backend, frontend and
// cloud deployment folders with their placeholder files, plus a default
// .gitignore and README.md. Building is idempotent and never overwrites an
// existing file, so it is safe to run against a tree the user has edited.
package scaffold
