package validator

import (
	"testing"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New()

	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_ValidateStruct_Success(t *testing.T) {
	v := New()

	req := entity.SendOTPRequest{
		Email:   "voter@example.com",
		Purpose: entity.OTPPurposeRegister,
	}

	err := v.ValidateStruct(&req)
	assert.NoError(t, err)
}

func TestValidator_ValidateStruct_InvalidEmail(t *testing.T) {
	v := New()

	req := entity.SendOTPRequest{
		Email:   "not-an-email",
		Purpose: entity.OTPPurposeLogin,
	}

	err := v.ValidateStruct(&req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidator_ValidateStruct_MissingEmail(t *testing.T) {
	v := New()

	req := entity.SendOTPRequest{Purpose: entity.OTPPurposeLogin}

	err := v.ValidateStruct(&req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestValidator_OTPPurpose_Valid(t *testing.T) {
	v := New()

	for _, purpose := range []string{entity.OTPPurposeRegister, entity.OTPPurposeLogin} {
		req := entity.SendOTPRequest{
			Email:   "voter@example.com",
			Purpose: purpose,
		}
		assert.NoError(t, v.ValidateStruct(&req), "purpose %q should be valid", purpose)
	}
}

func TestValidator_OTPPurpose_Invalid(t *testing.T) {
	v := New()

	for _, purpose := range []string{"reset", "REGISTER", "log-in", "admin"} {
		req := entity.SendOTPRequest{
			Email:   "voter@example.com",
			Purpose: purpose,
		}
		err := v.ValidateStruct(&req)
		assert.Error(t, err, "purpose %q should be rejected", purpose)
		assert.Contains(t, err.Error(), "purpose")
	}
}

func TestValidator_VerifyOTPRequest(t *testing.T) {
	v := New()

	valid := entity.VerifyOTPRequest{Email: "voter@example.com", Code: "123456"}
	assert.NoError(t, v.ValidateStruct(&valid))

	tooShort := entity.VerifyOTPRequest{Email: "voter@example.com", Code: "12345"}
	err := v.ValidateStruct(&tooShort)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 6 characters")

	notDigits := entity.VerifyOTPRequest{Email: "voter@example.com", Code: "12a456"}
	err = v.ValidateStruct(&notDigits)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "digits")
}

func TestValidator_CastVoteRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateStruct(&entity.CastVoteRequest{CandidateID: "C-101"}))

	err := v.ValidateStruct(&entity.CastVoteRequest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "candidate_id is required")
}

func TestValidator_ValidateStruct_Nil(t *testing.T) {
	v := New()

	err := v.ValidateStruct(nil)
	assert.Error(t, err)
}
