package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrDuplicateUser.Error() != "username taken" {
		t.Errorf("ErrDuplicateUser has unexpected message: %s", ErrDuplicateUser.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateUser", ErrDuplicateUser, 4004},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"AlreadyReviewed", ErrTransactionAlreadyReviewed, 4090},
		{"InvalidReview", ErrInvalidReviewAction, 4220},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(789, "300.00", "150.00")
	if err == nil {
		t.Fatal("NewInsufficientBalanceError returned nil")
	}

	expectedErrMsg := "insufficient balance for user 789: required 300.00, available 150.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}

	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError(err) = false, want true")
	}

	var detailed *InsufficientBalanceError
	if !errors.As(err, &detailed) {
		t.Fatal("errors.As failed: not an *InsufficientBalanceError")
	}
	if detailed.LogFields()["current_balance"] != "150.00" {
		t.Errorf("LogFields current_balance = %v, want 150.00", detailed.LogFields()["current_balance"])
	}
}

func TestReviewError(t *testing.T) {
	err := NewReviewError(42, "approve", "Approved", ErrTransactionAlreadyReviewed)

	expectedErrMsg := `review "approve" of transaction 42 (status Approved) failed: transaction already reviewed`
	if err.Error() != expectedErrMsg {
		t.Errorf("ReviewError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrTransactionAlreadyReviewed) {
		t.Errorf("errors.Is(err, ErrTransactionAlreadyReviewed) = false, want true")
	}

	var reviewErr *ReviewError
	if !errors.As(err, &reviewErr) {
		t.Fatal("errors.As failed: not a *ReviewError")
	}
	if reviewErr.LogFields()["error_code"] != CodeAlreadyReviewed {
		t.Errorf("LogFields error_code = %v, want %d", reviewErr.LogFields()["error_code"], CodeAlreadyReviewed)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientBalanceError(ErrInvalidUserID) {
		t.Errorf("IsInsufficientBalanceError(ErrInvalidUserID) = true, want false")
	}

	if IsDuplicateUserError(ErrInvalidAmount) {
		t.Errorf("IsDuplicateUserError(ErrInvalidAmount) = true, want false")
	}

	wrappedDuplicate := fmt.Errorf("wrapped: %w", ErrDuplicateUser)
	if !IsDuplicateUserError(wrappedDuplicate) {
		t.Errorf("IsDuplicateUserError(wrappedDuplicate) = false, want true")
	}

	if !IsValidationError(fmt.Errorf("%w: empty value", ErrInvalidAmount)) {
		t.Errorf("IsValidationError(wrapped ErrInvalidAmount) = false, want true")
	}

	if IsValidationError(ErrDatabaseConnection) {
		t.Errorf("IsValidationError(ErrDatabaseConnection) = true, want false")
	}

	for _, err := range []error{ErrNotFound, ErrUserNotFound, ErrTransactionNotFound, ErrSessionNotFound} {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}
}
