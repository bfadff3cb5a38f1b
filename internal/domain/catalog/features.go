package catalog

import (
	"encoding/json"
	"sort"
)

// FeatureTag is a canonical identifier for a feature a level includes. Tags
// are assigned when the catalog is authored; consumers never infer them from
// the free-text feature descriptions.
type FeatureTag string

const (
	TagBlog             FeatureTag = "blog"
	TagQRMenu           FeatureTag = "qr_menu"
	TagGoogleMyBusiness FeatureTag = "google_my_business"
	TagWhatsApp         FeatureTag = "whatsapp_integration"
	TagBookingSystem    FeatureTag = "booking_system"
	TagNewsletter       FeatureTag = "newsletter"
	TagMultilingual     FeatureTag = "multilingual"
	TagSEOAdvanced      FeatureTag = "seo_advanced"
	TagAnalytics        FeatureTag = "analytics"
	TagOnlinePayments   FeatureTag = "online_payments"
	TagProductCatalog   FeatureTag = "product_catalog"
	TagLoyaltySystem    FeatureTag = "loyalty_system"
	TagExtendedSupport  FeatureTag = "extended_support"
	TagPrioritySupport  FeatureTag = "priority_support"
	TagTraining         FeatureTag = "training"
)

// FeatureTagSet is the set of feature tags carried by a level.
type FeatureTagSet map[FeatureTag]struct{}

// NewFeatureTagSet builds a set from the given tags.
func NewFeatureTagSet(tags ...FeatureTag) FeatureTagSet {
	s := make(FeatureTagSet, len(tags))
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
	return s
}

// Has reports whether the set contains tag.
func (s FeatureTagSet) Has(tag FeatureTag) bool {
	_, ok := s[tag]
	return ok
}

// List returns the tags in deterministic (lexicographic) order.
func (s FeatureTagSet) List() []FeatureTag {
	out := make([]FeatureTag, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON renders the set as a sorted array.
func (s FeatureTagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON accepts an array of tags.
func (s *FeatureTagSet) UnmarshalJSON(data []byte) error {
	var tags []FeatureTag
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewFeatureTagSet(tags...)
	return nil
}
