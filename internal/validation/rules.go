package validation

// Canonical rule sets for the two protected actions. Field names match the
// JSON request bodies exactly.

// LoginRules validates a login attempt. The password is checked for presence
// only; the strength policy applies when credentials are provisioned, not when
// they are presented.
func LoginRules() RuleSet {
	return RuleSet{
		{Field: "idNumber", Kind: KindIDNumber},
		{Field: "password", Kind: KindLoginSecret},
	}
}

// PaymentRules validates a payment submission.
func PaymentRules() RuleSet {
	return RuleSet{
		{Field: "recipientName", Kind: KindName, Optional: true},
		{Field: "payeeAccountNumber", Kind: KindAccountNumber},
		{Field: "swiftCode", Kind: KindSWIFT},
		{Field: "amount", Kind: KindAmount},
		{Field: "currency", Kind: KindCurrency},
		{Field: "memo", Kind: KindMemo, Optional: true},
	}
}
