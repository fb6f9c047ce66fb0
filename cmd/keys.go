package cmd

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/fermento-pizzeria/fermento/internal/web"
	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate COOKIE_HASH_KEY and COOKIE_BLOCK_KEY values (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := make([]byte, 32)
			block := make([]byte, 32)
			if _, err := rand.Read(hash); err != nil {
				return err
			}
			if _, err := rand.Read(block); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "export COOKIE_HASH_KEY=%s\n", base64.StdEncoding.EncodeToString(hash))
			fmt.Fprintf(os.Stdout, "export COOKIE_BLOCK_KEY=%s\n", base64.StdEncoding.EncodeToString(block))
			return nil
		},
	}
	cmd.AddCommand(newKeysHashCmd())
	return cmd
}

func newKeysHashCmd() *cobra.Command {
	var password string

	c := &cobra.Command{
		Use:   "hash",
		Short: "Mint an ADMIN_PASSWORD_HASH value from a password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			h, err := web.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "export ADMIN_PASSWORD_HASH='%s'\n", h)
			return nil
		},
	}
	c.Flags().StringVar(&password, "password", "", "password to hash")
	return c
}
