package pkg_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akinalp/patievi/pkg"
)

func TestErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("%w: animal", pkg.ErrNotFound), http.StatusNotFound},
		{"unauthorized", fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized), http.StatusUnauthorized},
		{"already exists", fmt.Errorf("%w: email", pkg.ErrAlreadyExists), http.StatusConflict},
		{"bad request", fmt.Errorf("%w: nope", pkg.ErrBadRequest), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			pkg.Error(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.err.Error())
		})
	}
}

func TestErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	pkg.Error(rec, errors.New("bcrypt: password length exceeds 72 bytes"))

	// İç hata mesajı client'a sızmaz — gövde opak olmalı.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "bcrypt")
}
