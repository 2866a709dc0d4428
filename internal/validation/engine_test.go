package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func validPayment() map[string]string {
	return map[string]string{
		"recipientName":      "Jane Smith",
		"payeeAccountNumber": "12345678",
		"swiftCode":          "ABCDZAJJ",
		"amount":             "1234.56",
		"currency":           "ZAR",
		"memo":               "Invoice 42",
	}
}

func (s *EngineSuite) TestAcceptsValidRecord() {
	res := Validate(validPayment(), PaymentRules())

	s.True(res.Accepted)
	s.Empty(res.Errors)
	s.Equal("12345678", res.Normalized["payeeAccountNumber"])
	s.Equal("ZAR", res.Normalized["currency"])
}

func (s *EngineSuite) TestReportsAllFailingFields() {
	record := validPayment()
	record["payeeAccountNumber"] = "1234567"
	record["swiftCode"] = "ABCDZAJJ0012"

	res := Validate(record, PaymentRules())

	s.False(res.Accepted)
	s.Len(res.Errors, 2)
	s.Contains(res.Errors, "payeeAccountNumber")
	s.Contains(res.Errors, "swiftCode")
}

func (s *EngineSuite) TestTrimsWhitespace() {
	record := validPayment()
	record["payeeAccountNumber"] = "  12345678  "

	res := Validate(record, PaymentRules())

	s.True(res.Accepted)
	s.Equal("12345678", res.Normalized["payeeAccountNumber"])
}

func (s *EngineSuite) TestUppercasesSwiftBeforeMatching() {
	record := validPayment()
	record["swiftCode"] = "abcdzajj"

	res := Validate(record, PaymentRules())

	s.True(res.Accepted)
	s.Equal("ABCDZAJJ", res.Normalized["swiftCode"])
}

func (s *EngineSuite) TestOptionalFieldsMayBeEmpty() {
	record := validPayment()
	delete(record, "recipientName")
	record["memo"] = ""

	res := Validate(record, PaymentRules())

	s.True(res.Accepted)
	s.Equal("", res.Normalized["memo"])
}

func (s *EngineSuite) TestOptionalFieldStillValidatedWhenPresent() {
	record := validPayment()
	record["memo"] = "<script>alert(1)</script>"

	res := Validate(record, PaymentRules())

	s.False(res.Accepted)
	s.Contains(res.Errors, "memo")
}

func (s *EngineSuite) TestMissingRequiredFieldIsOneError() {
	record := validPayment()
	delete(record, "currency")

	res := Validate(record, PaymentRules())

	s.False(res.Accepted)
	s.Len(res.Errors, 1)
	s.Contains(res.Errors["currency"], "currency")
}

func (s *EngineSuite) TestUndeclaredFieldsNeverPassThrough() {
	record := validPayment()
	record["role"] = "admin"

	res := Validate(record, PaymentRules())

	s.True(res.Accepted)
	s.NotContains(res.Normalized, "role")
}

func (s *EngineSuite) TestLoginRules() {
	s.Run("valid attempt", func() {
		res := Validate(map[string]string{
			"idNumber": "9001015009087",
			"password": "Customer123!",
		}, LoginRules())
		s.True(res.Accepted)
	})

	s.Run("bad id and missing password reported together", func() {
		res := Validate(map[string]string{"idNumber": "123"}, LoginRules())
		s.False(res.Accepted)
		s.Len(res.Errors, 2)
	})
}
