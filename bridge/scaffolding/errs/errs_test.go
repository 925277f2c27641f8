package errs_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/taskpad/bridge/scaffolding/errs"
)

func TestNew(t *testing.T) {
	err := errs.New(errs.InvalidArgument, errors.New("name is required"))

	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, errs.InvalidArgument, err.Code)
	assert.NotEmpty(t, err.FuncName)
	assert.NotEmpty(t, err.FileName)
}

func TestNewf(t *testing.T) {
	err := errs.Newf(errs.Internal, "query failed: %s", "timeout")
	assert.Equal(t, "query failed: timeout", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   errs.ErrCode
		status int
	}{
		{errs.OK, http.StatusOK},
		{errs.Internal, http.StatusInternalServerError},
		{errs.NotFound, http.StatusNotFound},
		{errs.InvalidArgument, http.StatusBadRequest},
		{errs.AlreadyExists, http.StatusConflict},
		{errs.Unauthenticated, http.StatusUnauthorized},
		{errs.InternalOnlyLog, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := errs.Newf(tt.code, "boom")
			assert.Equal(t, tt.status, err.HTTPStatus())
		})
	}
}

func TestEncode(t *testing.T) {
	err := errs.Newf(errs.InvalidArgument, "task_id must be a positive integer")

	data, contentType, encErr := err.Encode()
	require.NoError(t, encErr)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"code":"invalid_argument","message":"task_id must be a positive integer"}`, string(data))
}

func TestInternalOnlyLogMasksAsInternal(t *testing.T) {
	assert.Equal(t, "internal", errs.InternalOnlyLog.String())
}
