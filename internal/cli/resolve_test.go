package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathID(t *testing.T) {
	id, err := resolvePathID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = resolvePathID("")
	assert.Error(t, err)

	_, err = resolvePathID("abc")
	assert.Error(t, err)

	_, err = resolvePathID("-3")
	assert.Error(t, err)

	_, err = resolvePathID("0")
	assert.Error(t, err)
}

func TestCurrentUser(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("user", "", "")
		return cmd
	}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("PATHWISE_USER", "envuser")
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("user", "flaguser"))

		user, err := currentUser(cmd.Flags())
		require.NoError(t, err)
		assert.Equal(t, "flaguser", user)
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("PATHWISE_USER", "envuser")
		user, err := currentUser(newCmd().Flags())
		require.NoError(t, err)
		assert.Equal(t, "envuser", user)
	})

	t.Run("neither set", func(t *testing.T) {
		t.Setenv("PATHWISE_USER", "")
		_, err := currentUser(newCmd().Flags())
		assert.Error(t, err)
	})
}
