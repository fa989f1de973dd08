// Package validators provides stateless input validators for interactive
// prompts.
//
// Each validator pairs a predicate with a fixed rejection message. Validate
// returns nil when the input is accepted and a *ValidationError carrying the
// message otherwise, so a validator plugs directly into a huh input field:
//
//	v := validators.NotEmpty("enter something")
//	huh.NewInput().Title("Project name").Validate(v.Validate)
package validators
