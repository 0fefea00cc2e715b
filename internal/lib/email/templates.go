package email

// Template names a file templates/emails/<name>.html.
type Template string

const (
	TemplateWelcome        Template = "welcome"
	TemplateAccountRemoved Template = "account_removed"
)
