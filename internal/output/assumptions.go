package output

// DefaultAssumptions lists the tax modelling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Slab tax is marginal; surcharge applies to slab tax above the band thresholds with no marginal relief",
	"Health and education cess: 4% of slab tax plus surcharge",
	"Old-regime rebate is subtracted from the cess-inclusive tax",
	"HRA exemption, section 80C (employee PF) and 80CCD(1B) (NPS) apply in the old regime only",
	"Employer PF, gratuity, insurance and NPS are part of CTC but not of gross salary",
}
