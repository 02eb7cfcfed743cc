package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-character-forge/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "session not found",
			expected: "NOT_FOUND: session not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "character has not been generated",
			expected: "FAILED_PRECONDITION: character has not been generated",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("session not found").WithMeta("session_id", "sess_1")
	wrapped := errors.Wrap(base, "failed to navigate")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to navigate", wrapped.Message)
	s.Equal("sess_1", wrapped.Meta["session_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	base := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(base, "failed to save session")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(base, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapContextErrors() {
	s.Equal(errors.CodeCanceled, errors.Wrap(context.Canceled, "generation").Code)
	s.Equal(errors.CodeDeadlineExceeded, errors.Wrap(context.DeadlineExceeded, "generation").Code)
	s.True(errors.IsCanceled(fmt.Errorf("outer: %w", context.Canceled)))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.Internal("bad payload").WithMeta("model", "gpt-4-turbo")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "text generation failed")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("gpt-4-turbo", wrapped.Meta["model"])
}

func (s *ErrorsTestSuite) TestIsComparesCodes() {
	err := errors.Wrap(errors.NotFound("a"), "b")
	s.True(errors.Is(err, errors.NotFound("anything")))
	s.False(errors.Is(err, errors.Internal("anything")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.InvalidArgument("bad method").WithMeta("method", "dice")

	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("bad method", errors.GetMessage(err))
	s.Equal("dice", errors.GetMeta(err)["method"])
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	s.Run("maps code and message", func() {
		err := errors.FailedPrecondition("complete is only reachable from review")
		st, ok := status.FromError(errors.ToGRPCError(err))
		s.Require().True(ok)
		s.Equal(codes.FailedPrecondition, st.Code())
		s.Equal("complete is only reachable from review", st.Message())
	})

	s.Run("round trips metadata", func() {
		err := errors.NotFound("session not found").WithMeta("session_id", "sess_9")
		back := errors.FromGRPCError(errors.ToGRPCError(err))

		s.True(errors.IsNotFound(back))
		s.Equal("sess_9", errors.GetMeta(back)["session_id"])
	})

	s.Run("round trips validation fields", func() {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("session_id")
		back := errors.FromGRPCError(errors.ToGRPCError(vb.Build()))

		s.True(errors.IsInvalidArgument(back))
		fields, ok := errors.GetMeta(back)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Equal([]string{"is required"}, fields["session_id"])
	})

	s.Run("passes through status errors", func() {
		original := status.Error(codes.Unavailable, "down")
		s.Equal(original, errors.ToGRPCError(original))
	})

	s.Run("plain errors become internal", func() {
		st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Equal(codes.Internal, st.Code())
	})
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Equal(404, errors.CodeNotFound.HTTPStatus())
	s.Equal(412, errors.CodeFailedPrecondition.HTTPStatus())
	s.Equal(503, errors.CodeUnavailable.HTTPStatus())
}
