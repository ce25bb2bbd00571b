package auth

import (
	"testing"
	"time"

	"dailyfresh/config"
	"dailyfresh/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActivationCodec_RoundTrip(t *testing.T) {
	codec, err := NewActivationCodec(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, codec)

	userID := uuid.New()

	token, err := codec.Issue(userID, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := codec.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestActivationCodec_ExpiredToken(t *testing.T) {
	codec, err := NewActivationCodec(testConfig())
	assert.NoError(t, err)

	token, err := codec.Issue(uuid.New(), -time.Minute)
	assert.NoError(t, err)

	got, err := codec.Verify(token)
	assert.ErrorIs(t, err, service.ErrActivationTokenExpired)
	assert.Equal(t, uuid.Nil, got)
}

func TestActivationCodec_TamperedToken(t *testing.T) {
	codec, err := NewActivationCodec(testConfig())
	assert.NoError(t, err)

	token, err := codec.Issue(uuid.New(), time.Hour)
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	got, err := codec.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrActivationTokenInvalid)
	assert.Equal(t, uuid.Nil, got)
}

func TestActivationCodec_WrongSecret(t *testing.T) {
	codec, err := NewActivationCodec(testConfig())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Activation = "a_completely_different_activation_secret"
	otherCodec, err := NewActivationCodec(otherCfg)
	assert.NoError(t, err)

	token, err := codec.Issue(uuid.New(), time.Hour)
	assert.NoError(t, err)

	_, err = otherCodec.Verify(token)
	assert.ErrorIs(t, err, service.ErrActivationTokenInvalid)
}

func TestActivationCodec_GarbageToken(t *testing.T) {
	codec, err := NewActivationCodec(testConfig())
	assert.NoError(t, err)

	_, err = codec.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrActivationTokenInvalid)
}

func TestActivationCodec_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	codec, err := NewActivationCodec(cfg)
	assert.Error(t, err)
	assert.Nil(t, codec)
}
