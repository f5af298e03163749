package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/greenaire/site/internal/config"
	"github.com/greenaire/site/internal/ui/forms"
	"github.com/greenaire/site/internal/ui/model"
	"github.com/greenaire/site/internal/ui/relay"
)

func newContactCmd(opts *rootOptions) *cobra.Command {
	contact := &cobra.Command{
		Use:   "contact",
		Short: "Contact form tools",
	}
	contact.AddCommand(newContactSendCmd(opts))
	return contact
}

func newContactSendCmd(opts *rootOptions) *cobra.Command {
	var name, email, message string
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a contact message through the configured relay",
		Long: `Runs the contact form flow from the terminal: the fields are validated
exactly as in the browser, then delivered once through the form relay.
Useful for checking relay.endpoint before deploying.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, closeLog, err := buildLogger("cli", cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			client := relay.New(cfg.Relay.Endpoint, relay.WithLogger(logger))
			fields := model.ContactFields{Name: name, Email: email, Message: message}
			return sendContact(cmd.Context(), cfg.Relay, client, fields, cmd.OutOrStdout(), stderr(cmd))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}

func sendContact(ctx context.Context, cfg config.RelayConfig, r forms.Relay, fields model.ContactFields, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	form := forms.NewContactForm(r,
		forms.WithFallbackEmail(cfg.FallbackEmail),
		forms.WithTimeout(cfg.Timeout),
		forms.WithAlerter(forms.AlerterFunc(func(msg string) {
			fmt.Fprintln(errOut, msg)
		})),
	)
	for _, field := range model.ContactFieldNames {
		form.SetField(field, fields.Get(field))
	}

	<-form.Submit(ctx)

	st := form.State()
	switch {
	case len(st.Errors) > 0:
		keys := make([]string, 0, len(st.Errors))
		for k := range st.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(errOut, "%s: %s\n", k, st.Errors[k])
		}
		return fmt.Errorf("contact form has %d invalid field(s)", len(st.Errors))
	case st.Status != model.StatusSuccess:
		return fmt.Errorf("message was not delivered")
	}
	fmt.Fprintln(out, "Message sent successfully!")
	return nil
}
