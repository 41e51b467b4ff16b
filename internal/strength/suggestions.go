package strength

// Suggestions returns advice for improving a password with the given label.
func Suggestions(l Label) string {
	switch l {
	case LabelWeak:
		return "Suggestions to improve password strength:\n" +
			"- Use at least 12 characters.\n" +
			"- Include uppercase letters, numbers, and symbols.\n" +
			"- Avoid common patterns like '123456'."
	case LabelMedium:
		return "Suggestions to make your password stronger:\n" +
			"- Increase the length to more than 12 characters.\n" +
			"- Add more symbols and numbers.\n" +
			"- Use a mix of uppercase and lowercase letters."
	default:
		return "Your password is strong, but always avoid reusing passwords across different accounts."
	}
}
