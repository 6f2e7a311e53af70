package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/Jinzyy/project-eza-sub000/pkg/jwt"
)

const secret = "s3cret-de-prueba"

func TestGenerateParse(t *testing.T) {
	token, err := pkgjwt.Generate(secret, "op-7", "Rina", "auth.fish-ops", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, "auth.fish-ops", token)
	require.NoError(t, err)
	assert.Equal(t, "op-7", claims.Subject)
	assert.Equal(t, "Rina", claims.Operator)
}

func TestParse_Rechazos(t *testing.T) {
	valid, err := pkgjwt.Generate(secret, "op-7", "", "auth.fish-ops", time.Hour)
	require.NoError(t, err)
	expired, err := pkgjwt.Generate(secret, "op-7", "", "auth.fish-ops", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", "", valid)
	assert.Error(t, err, "firma incorrecta")

	_, err = pkgjwt.Parse(secret, "otro-emisor", valid)
	assert.Error(t, err, "emisor distinto")

	_, err = pkgjwt.Parse(secret, "", expired)
	assert.Error(t, err, "expirado")

	_, err = pkgjwt.Parse("", "", valid)
	assert.Error(t, err, "sin secret")

	_, err = pkgjwt.Generate("", "op", "", "", time.Hour)
	assert.Error(t, err)
}
