package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runSettings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: vitrina settings show|set")
	}

	switch args[0] {
	case "show":
		return c.runSettingsShow(ctx)
	case "set":
		return c.runSettingsSet(ctx, args[1:])
	default:
		return fmt.Errorf("unknown settings subcommand: %s", args[0])
	}
}

func (c *Cli) runSettingsShow(ctx context.Context) error {
	s, err := c.settingsSvc.Get(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Company settings:")
	fmt.Printf("  Name:             %s\n", s.Name)
	fmt.Printf("  Address:          %s\n", s.Address)
	fmt.Printf("  Phone:            %s\n", s.Phone)
	fmt.Printf("  Email:            %s\n", s.Email)
	fmt.Printf("  Website:          %s\n", s.Website)
	fmt.Printf("  Bank name:        %s\n", s.BankName)
	fmt.Printf("  Bank account:     %s\n", s.BankAccount)
	fmt.Printf("  Bank code:        %s\n", s.BankCode)
	fmt.Printf("  Default language: %s\n", s.DefaultLanguage)
	fmt.Printf("  Default service:  %s\n", s.DefaultService)
	if s.LogoDataURI != "" {
		fmt.Println("  Logo:             set")
	}
	return nil
}

func (c *Cli) runSettingsSet(ctx context.Context, args []string) error {
	// start from the stored settings so unset flags keep their value
	s, err := c.settingsSvc.Get(ctx)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
	fs.StringVar(&s.Name, "name", s.Name, "company name")
	fs.StringVar(&s.Address, "address", s.Address, "company address")
	fs.StringVar(&s.Phone, "phone", s.Phone, "company phone")
	fs.StringVar(&s.Email, "email", s.Email, "company email")
	fs.StringVar(&s.Website, "website", s.Website, "company website")
	fs.StringVar(&s.BankName, "bank-name", s.BankName, "bank name")
	fs.StringVar(&s.BankAccount, "bank-account", s.BankAccount, "bank account (IBAN)")
	fs.StringVar(&s.BankCode, "bank-code", s.BankCode, "bank code")
	fs.StringVar(&s.DefaultLanguage, "lang", s.DefaultLanguage, "default invoice language: en or lt")
	fs.StringVar(&s.DefaultService, "service", s.DefaultService, "default service description")
	logoFile := fs.String("logo", "", "path to a PNG or JPEG logo to embed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if s.DefaultLanguage != "en" && s.DefaultLanguage != "lt" {
		return fmt.Errorf("unsupported language %q, expected en or lt", s.DefaultLanguage)
	}

	if *logoFile != "" {
		dataURI, err := encodeLogo(*logoFile)
		if err != nil {
			return err
		}
		s.LogoDataURI = dataURI
	}

	if err := c.settingsSvc.Save(ctx, s); err != nil {
		return err
	}

	fmt.Println("✓ Settings saved.")
	return nil
}
