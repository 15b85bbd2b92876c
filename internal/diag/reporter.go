package diag

import (
	"github.com/hashicorp/hcl/v2"
)

// Reporter is the handle properties use to emit diagnostics.
type Reporter struct {
	sink   Sink
	policy *Policy
}

// NewReporter returns a Reporter forwarding to sink. policy may be nil.
func NewReporter(sink Sink, policy *Policy) *Reporter {
	return &Reporter{sink: sink, policy: policy}
}

// Error reports an error anchored at subject.
func (r *Reporter) Error(subject hcl.Range, summary, detail string) {
	r.report(hcl.DiagError, subject, summary, detail)
}

// Warning reports a warning anchored at subject.
func (r *Reporter) Warning(subject hcl.Range, summary, detail string) {
	r.report(hcl.DiagWarning, subject, summary, detail)
}

// Check reports a finding of c with the severity chosen by the policy.
func (r *Reporter) Check(c Check, subject hcl.Range, detail string) {
	r.report(r.policy.SeverityOf(c), subject, c.Summary, detail)
}

// Append forwards already-built diagnostics, such as parse failures.
func (r *Reporter) Append(diags hcl.Diagnostics) {
	for _, d := range diags {
		r.sink.Report(d)
	}
}

func (r *Reporter) report(severity hcl.DiagnosticSeverity, subject hcl.Range, summary, detail string) {
	r.sink.Report(&hcl.Diagnostic{
		Severity: severity,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject.Ptr(),
	})
}
