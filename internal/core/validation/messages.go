package validation

// User-visible validation messages. The business-rule messages below are
// part of the service's API contract; clients match on them.
const (
	TitleNotBlank            = "Title can not be blank"
	TitleMaxLength           = "Name must not exceed 30 characters"
	PositiveAmount           = "Amount must be positive"
	BaseCurrencyNotBlank     = "Base currency can not be blank"
	BaseCurrencyPattern      = "Base currency must be a 3-letter uppercase code"
	TargetCurrencyPattern    = "Target Currency must be null or a 3-letter uppercase code"
	AttachmentIDNullOrBlank  = "AttachmentId must be empty or not blank"
	RecipientIDNotBlank      = "Recipient's id can not be blank"
	MessageNullOrBlank       = "Message can not be blank and not null at the same time"
	PaymentIDNotBlank        = "Payment id can not be blank"
	GroupIDNotBlank          = "Group id can not be blank"

	BaseCurrencyNotInGroupCurrencies   = "Base currency must be in a group currencies"
	BaseCurrencyEqualToTargetCurrency  = "Base currency must be different than target currency"
	TargetCurrencyNotInGroupCurrencies = "Target currency must be in a group currencies"
	BaseCurrencyNotAvailable           = "Base currency is not available"

	RecipientIsCreator      = "Payment recipient can not be creator"
	RecipientNotGroupMember = "Payment recipient is not a group member"

	UserNotRecipient = "Only recipient can submit decision"

	NoModification = "Update does not change anything"
	UserNotCreator = "Only creator can update payment"
)
