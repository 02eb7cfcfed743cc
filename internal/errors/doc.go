// Package errors is the structured error type shared by every layer of the
// character forge.
//
// Errors carry a Code, a caller-facing Message, an optional Cause and Meta.
// Repositories return NotFound or InvalidArgument, orchestrators add
// FailedPrecondition for state-machine violations and Unavailable for the
// text-generation backend, and handlers convert with ToGRPCError:
//
//	out, err := h.wizard.Navigate(ctx, input)
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("port", cfg.Port, 1, 65535, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Wrapping keeps the original code, so a NotFound from Redis is still a
// NotFound after the orchestrator adds its own context:
//
//	return errors.Wrapf(err, "failed to load session %s", id)
package errors
