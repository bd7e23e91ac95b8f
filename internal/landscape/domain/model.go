package domain

// IntegrationFlow is one directed integration relationship reported by a
// system's review record. The counterpart role says which side of the flow
// the counterpart system sits on.
type IntegrationFlow struct {
	CounterpartCode string `json:"counterpart_code"`
	CounterpartRole string `json:"counterpart_role"`
	Pattern         string `json:"pattern"`
	Frequency       string `json:"frequency"`
	Purpose         string `json:"purpose,omitempty"`
	Middleware      string `json:"middleware,omitempty"`
}

// SolutionDetails carries the business metadata of a reviewed solution.
type SolutionDetails struct {
	BusinessOwner string `json:"business_owner,omitempty"`
	Criticality   string `json:"criticality,omitempty"`
	URL           string `json:"url,omitempty"`
}

// SolutionOverview is the nested solution section of a system record.
// Either pointer may be absent in upstream data; consumers that need them
// must fail with a DataIntegrityError rather than substitute silently.
type SolutionOverview struct {
	SolutionName string           `json:"solution_name"`
	ReviewCode   string           `json:"review_code"`
	Details      *SolutionDetails `json:"details,omitempty"`
}

// SystemRecord is one system's full review record. SystemCode is the primary
// key and is unique within a record set.
type SystemRecord struct {
	SystemCode string            `json:"system_code"`
	Solution   *SolutionOverview `json:"solution,omitempty"`
	Flows      []IntegrationFlow `json:"flows,omitempty"`
}

// CapabilityTuple is one (L1, L2, L3) entry from the capability dropdown
// catalog.
type CapabilityTuple struct {
	L1 string `json:"l1"`
	L2 string `json:"l2"`
	L3 string `json:"l3"`
}

// CapabilityAssignment places one system under one capability tuple.
type CapabilityAssignment struct {
	SystemCode string `json:"system_code"`
	SystemName string `json:"system_name"`
	L1         string `json:"l1"`
	L2         string `json:"l2"`
	L3         string `json:"l3"`
}
