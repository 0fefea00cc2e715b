package email

func (c *Client) SendWelcomeEmail(to, firstName string) error {
	return c.SendEmail(
		to,
		"Welcome to Tutoring!",
		TemplateWelcome,
		map[string]string{
			"UserFirstName": firstName,
		},
	)
}

// SendAccountRemovedEmail confirms that a profile and its sign-in account
// were deleted.
func (c *Client) SendAccountRemovedEmail(to, firstName string) error {
	return c.SendEmail(
		to,
		"Your Tutoring account was removed",
		TemplateAccountRemoved,
		map[string]string{
			"UserFirstName": firstName,
		},
	)
}
