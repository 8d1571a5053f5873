package services

// FreePostLimit is the number of posts a user without membership may own.
const FreePostLimit = 5

const QuotaMessage = "You can only create up to 5 posts. Become a member to add more posts."

// CheckPostQuota decides whether a user may create one more post. Members are
// never limited; everybody else must own fewer than FreePostLimit posts.
func CheckPostQuota(membership bool, postCount int64) error {
	if membership || postCount < FreePostLimit {
		return nil
	}
	return &Error{Kind: ErrQuotaExceeded, Message: QuotaMessage}
}
