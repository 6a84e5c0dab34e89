// Package settings loads the optional HCL settings file for the CLI wrapper.
//
// The file supplies defaults that explicit flags override: the target sum to
// solve for and the logging setup. It configures the wrapper only; the solver
// itself takes its input as a plain function argument.
package settings
