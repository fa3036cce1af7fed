package domain

// AdminPolicy decides which admin-only controls a viewer sees.
//
// Two independent mechanisms exist and are kept apart:
//   - an allow-list of numeric ids gating the suggestions review list;
//   - a single notification admin id gating the notification composer,
//     compared by exact string equality against the session id or a
//     manually entered value.
//
// Both are UI hints. The backend authorizes every request again.
type AdminPolicy struct {
	reviewers     map[int64]struct{}
	notifyAdminID string
}

// NewAdminPolicy builds a policy from the reviewer allow-list and the notification admin id.
func NewAdminPolicy(reviewerIDs []int64, notifyAdminID string) AdminPolicy {
	reviewers := make(map[int64]struct{}, len(reviewerIDs))
	for _, id := range reviewerIDs {
		reviewers[id] = struct{}{}
	}
	return AdminPolicy{
		reviewers:     reviewers,
		notifyAdminID: notifyAdminID,
	}
}

// CanReviewSuggestions reports whether the viewer may see the suggestions list.
func (p AdminPolicy) CanReviewSuggestions(s Session) bool {
	id, ok := s.UserID()
	if !ok {
		return false
	}
	_, allowed := p.reviewers[id]
	return allowed
}

// CanNotify reports whether the full notification composer should render.
// It holds when either the session id or the entered id equals the notification admin id.
func (p AdminPolicy) CanNotify(s Session, enteredID string) bool {
	if p.notifyAdminID == "" {
		return false
	}
	if sid := s.UserIDString(); sid != "" && sid == p.notifyAdminID {
		return true
	}
	return enteredID != "" && enteredID == p.notifyAdminID
}

// NotifyAdminID resolves the admin_id sent with a notification:
// the entered value if non-empty, else the session id, else "".
func (p AdminPolicy) NotifyAdminID(s Session, enteredID string) string {
	if enteredID != "" {
		return enteredID
	}
	return s.UserIDString()
}

// ReviewerCount returns the size of the allow-list.
func (p AdminPolicy) ReviewerCount() int {
	return len(p.reviewers)
}
