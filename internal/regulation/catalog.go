package regulation

// Catalog is the static table of supported frameworks. It is reference data:
// built once, never mutated at runtime, shared by reference across callers.
type Catalog struct {
	frameworks map[string]Framework
	order      []string
}

// NewCatalog builds the built-in framework table.
func NewCatalog() *Catalog {
	c := &Catalog{frameworks: map[string]Framework{}}
	for _, fw := range builtinFrameworks {
		c.frameworks[fw.ID] = fw
		c.order = append(c.order, fw.ID)
	}
	return c
}

// Framework returns the framework with the given id.
func (c *Catalog) Framework(id string) (Framework, bool) {
	fw, ok := c.frameworks[id]
	return fw, ok
}

// Frameworks returns all frameworks in registration order.
func (c *Catalog) Frameworks() []Framework {
	out := make([]Framework, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.frameworks[id])
	}
	return out
}

// IDs returns the ids of all registered frameworks.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

var builtinFrameworks = []Framework{
	{
		ID:           "gdpr",
		Name:         "GDPR",
		FullName:     "General Data Protection Regulation",
		Jurisdiction: "EU",
		Requirements: []Requirement{
			{
				ID:          "gdpr-consent",
				Category:    "lawful_basis",
				Requirement: "Valid consent for personal data processing",
				Description: "Consent must be freely given, specific, informed, and unambiguous, with an affirmative action such as a checkbox or signed agreement.",
				Severity:    SeverityHigh,
				Controls:    []string{"consent capture UI", "consent withdrawal flow", "consent records"},
			},
			{
				ID:          "gdpr-data-minimization",
				Category:    "data_protection",
				Requirement: "Collect only data necessary for the stated purpose",
				Description: "Personal data must be adequate, relevant, and limited to what is necessary (Art. 5(1)(c)).",
				Severity:    SeverityMedium,
				Controls:    []string{"data inventory", "field-level review"},
			},
			{
				ID:          "gdpr-right-erasure",
				Category:    "data_subject_rights",
				Requirement: "Support the right to erasure",
				Description: "Data subjects can request deletion of their personal data without undue delay (Art. 17).",
				Severity:    SeverityHigh,
				Controls:    []string{"deletion workflow", "backup purge policy"},
			},
			{
				ID:          "gdpr-breach-notification",
				Category:    "incident_response",
				Requirement: "Notify supervisory authority of breaches within 72 hours",
				Description: "Personal data breaches must be reported to the supervisory authority within 72 hours of awareness (Art. 33).",
				Severity:    SeverityCritical,
				Controls:    []string{"incident runbook", "authority contact register"},
			},
			{
				ID:          "gdpr-dpia",
				Category:    "risk_management",
				Requirement: "Conduct DPIA for high-risk processing",
				Description: "A Data Protection Impact Assessment is required where processing is likely to result in high risk to data subjects (Art. 35).",
				Severity:    SeverityHigh,
				Controls:    []string{"DPIA template", "DPO review"},
			},
		},
	},
	{
		ID:           "aml",
		Name:         "AML",
		FullName:     "Anti-Money Laundering Directive (AMLD5)",
		Jurisdiction: "EU",
		Requirements: []Requirement{
			{
				ID:          "aml-cdd",
				Category:    "due_diligence",
				Requirement: "Perform customer due diligence before onboarding",
				Description: "Identity must be verified against reliable, independent sources before a business relationship is established.",
				Severity:    SeverityCritical,
				Controls:    []string{"identity verification", "document checks"},
			},
			{
				ID:          "aml-edd-pep",
				Category:    "due_diligence",
				Requirement: "Apply enhanced due diligence to PEPs",
				Description: "Politically exposed persons require senior management approval and enhanced ongoing monitoring.",
				Severity:    SeverityCritical,
				Controls:    []string{"PEP screening", "EDD workflow"},
			},
			{
				ID:          "aml-sar",
				Category:    "reporting",
				Requirement: "File suspicious activity reports",
				Description: "Suspicious transactions must be reported to the financial intelligence unit without tipping off the customer.",
				Severity:    SeverityHigh,
				Controls:    []string{"SAR filing process", "case management"},
			},
			{
				ID:          "aml-record-keeping",
				Category:    "record_keeping",
				Requirement: "Retain CDD records for five years",
				Description: "Customer due diligence documents and transaction records must be retained for at least five years after the relationship ends.",
				Severity:    SeverityMedium,
				Controls:    []string{"retention schedule", "archival storage"},
			},
		},
	},
	{
		ID:           "eidas",
		Name:         "eIDAS",
		FullName:     "Electronic Identification, Authentication and Trust Services Regulation",
		Jurisdiction: "EU",
		Requirements: []Requirement{
			{
				ID:          "eidas-assurance",
				Category:    "identity_assurance",
				Requirement: "Match identity assurance level to transaction risk",
				Description: "Electronic identification must meet assurance level low, substantial, or high appropriate to the service.",
				Severity:    SeverityHigh,
				Controls:    []string{"assurance level mapping", "LoA review"},
			},
			{
				ID:          "eidas-trust-services",
				Category:    "trust_services",
				Requirement: "Use qualified trust service providers for signatures and seals",
				Description: "Qualified electronic signatures require certificates from providers on the EU trusted list.",
				Severity:    SeverityMedium,
				Controls:    []string{"QTSP register check", "signature validation"},
			},
		},
	},
	{
		ID:           "psd2",
		Name:         "PSD2",
		FullName:     "Revised Payment Services Directive",
		Jurisdiction: "EU",
		Requirements: []Requirement{
			{
				ID:          "psd2-sca",
				Category:    "authentication",
				Requirement: "Apply strong customer authentication to payments",
				Description: "Electronic payments require authentication with two or more independent factors.",
				Severity:    SeverityCritical,
				Controls:    []string{"MFA enforcement", "exemption management"},
			},
			{
				ID:          "psd2-open-banking",
				Category:    "access",
				Requirement: "Expose dedicated access interfaces to third-party providers",
				Description: "Account servicing providers must offer secure APIs for licensed third-party access to account data.",
				Severity:    SeverityMedium,
				Controls:    []string{"API gateway", "TPP certificate validation"},
			},
		},
	},
}
