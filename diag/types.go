package diag

// Database is the root of a diagnostic database description. It maps to a
// single DIAG-LAYER-CONTAINER in the emitted ODX document.
type Database struct {
	ID        string      `yaml:"id" json:"id"`
	ShortName string      `yaml:"short_name" json:"short_name" validate:"required"`
	LongName  string      `yaml:"long_name" json:"long_name,omitempty"`
	Layers    []DiagLayer `yaml:"layers" json:"layers" validate:"required,min=1,dive"`
}

// DiagLayer is one BASE-VARIANT: the unit an ECU's diagnostic description
// lives in.
type DiagLayer struct {
	ID                  string               `yaml:"id" json:"id"`
	ShortName           string               `yaml:"short_name" json:"short_name" validate:"required"`
	LongName            string               `yaml:"long_name" json:"long_name,omitempty"`
	Description         string               `yaml:"description" json:"description,omitempty"`
	FunctClasses        []FunctClass         `yaml:"funct_classes" json:"funct_classes,omitempty" validate:"dive"`
	Services            []DiagService        `yaml:"services" json:"services,omitempty" validate:"dive"`
	Jobs                []SingleEcuJob       `yaml:"jobs" json:"jobs,omitempty" validate:"dive"`
	Requests            []Request            `yaml:"requests" json:"requests,omitempty" validate:"dive"`
	PosResponses        []Response           `yaml:"pos_responses" json:"pos_responses,omitempty" validate:"dive"`
	NegResponses        []Response           `yaml:"neg_responses" json:"neg_responses,omitempty" validate:"dive"`
	AdditionalAudiences []AdditionalAudience `yaml:"additional_audiences" json:"additional_audiences,omitempty" validate:"dive"`
}

// DiagService describes one diagnostic request/response exchange.
//
// ID, ShortName and RequestRef are mandatory; the writer assumes they are
// set and the loader enforces it. Reference slices keep their source
// order, which is also the emission order.
type DiagService struct {
	ID              string    `yaml:"id" json:"id"`
	Semantic        string    `yaml:"semantic" json:"semantic,omitempty"`
	ShortName       string    `yaml:"short_name" json:"short_name" validate:"required"`
	LongName        string    `yaml:"long_name" json:"long_name,omitempty"`
	Description     string    `yaml:"description" json:"description,omitempty"`
	FunctClassRefs  []string  `yaml:"funct_class_refs" json:"funct_class_refs,omitempty"`
	Audience        *Audience `yaml:"audience" json:"audience,omitempty"`
	RequestRef      string    `yaml:"request_ref" json:"request_ref" validate:"required"`
	PosResponseRefs []string  `yaml:"pos_response_refs" json:"pos_response_refs,omitempty"`
	NegResponseRefs []string  `yaml:"neg_response_refs" json:"neg_response_refs,omitempty"`
}

// Audience restricts which actors may execute a service or job. The five
// flags are tri-state: ODX defaults them to true when the attribute is
// absent, so nil means "not stated" and suppresses the attribute.
type Audience struct {
	EnabledAudienceRefs  []string `yaml:"enabled_audience_refs" json:"enabled_audience_refs,omitempty"`
	DisabledAudienceRefs []string `yaml:"disabled_audience_refs" json:"disabled_audience_refs,omitempty"`
	IsSupplier           *bool    `yaml:"is_supplier" json:"is_supplier,omitempty"`
	IsDevelopment        *bool    `yaml:"is_development" json:"is_development,omitempty"`
	IsManufacturing      *bool    `yaml:"is_manufacturing" json:"is_manufacturing,omitempty"`
	IsAftersales         *bool    `yaml:"is_aftersales" json:"is_aftersales,omitempty"`
	IsAftermarket        *bool    `yaml:"is_aftermarket" json:"is_aftermarket,omitempty"`
}

// AdditionalAudience is a named audience target referenced from Audience
// enabled/disabled lists.
type AdditionalAudience struct {
	ID        string `yaml:"id" json:"id"`
	ShortName string `yaml:"short_name" json:"short_name" validate:"required"`
	LongName  string `yaml:"long_name" json:"long_name,omitempty"`
}

// FunctClass groups services under a named diagnostic function category.
type FunctClass struct {
	ID          string `yaml:"id" json:"id"`
	ShortName   string `yaml:"short_name" json:"short_name" validate:"required"`
	LongName    string `yaml:"long_name" json:"long_name,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Request is the message layout a service sends.
type Request struct {
	ID        string  `yaml:"id" json:"id"`
	ShortName string  `yaml:"short_name" json:"short_name" validate:"required"`
	LongName  string  `yaml:"long_name" json:"long_name,omitempty"`
	Params    []Param `yaml:"params" json:"params,omitempty" validate:"dive"`
}

// Response is a positive or negative message layout; which of the two it
// is follows from the layer list that holds it.
type Response struct {
	ID        string  `yaml:"id" json:"id"`
	ShortName string  `yaml:"short_name" json:"short_name" validate:"required"`
	LongName  string  `yaml:"long_name" json:"long_name,omitempty"`
	Params    []Param `yaml:"params" json:"params,omitempty" validate:"dive"`
}

// Param is one positionable parameter inside a request or response. A
// param is either a coded constant (CodedValue + BaseDataType) or a value
// param resolved through a data object property (DopRef).
type Param struct {
	Semantic     string `yaml:"semantic" json:"semantic,omitempty"`
	ShortName    string `yaml:"short_name" json:"short_name" validate:"required"`
	LongName     string `yaml:"long_name" json:"long_name,omitempty"`
	Description  string `yaml:"description" json:"description,omitempty"`
	BytePosition *int   `yaml:"byte_position" json:"byte_position,omitempty"`
	CodedValue   string `yaml:"coded_value" json:"coded_value,omitempty"`
	BaseDataType string `yaml:"base_data_type" json:"base_data_type,omitempty" validate:"omitempty,oneof=A_UINT32 A_INT32 A_FLOAT32 A_FLOAT64 A_BYTEFIELD A_ASCIISTRING A_UTF8STRING A_UNICODE2STRING"`
	DopRef       string `yaml:"dop_ref" json:"dop_ref,omitempty"`
}

// IsCodedConst reports whether the param is a coded constant rather than
// a DOP-backed value param.
func (p *Param) IsCodedConst() bool {
	return p.CodedValue != ""
}

// SingleEcuJob is a DIAG-COMMS member executed on the tester instead of
// being exchanged with the ECU: program code plus its parameter
// declarations.
type SingleEcuJob struct {
	ID              string     `yaml:"id" json:"id"`
	Semantic        string     `yaml:"semantic" json:"semantic,omitempty"`
	ShortName       string     `yaml:"short_name" json:"short_name" validate:"required"`
	LongName        string     `yaml:"long_name" json:"long_name,omitempty"`
	Description     string     `yaml:"description" json:"description,omitempty"`
	FunctClassRefs  []string   `yaml:"funct_class_refs" json:"funct_class_refs,omitempty"`
	Audience        *Audience  `yaml:"audience" json:"audience,omitempty"`
	ProgCodes       []ProgCode `yaml:"prog_codes" json:"prog_codes" validate:"required,min=1,dive"`
	InputParams     []JobParam `yaml:"input_params" json:"input_params,omitempty" validate:"dive"`
	OutputParams    []JobParam `yaml:"output_params" json:"output_params,omitempty" validate:"dive"`
	NegOutputParams []JobParam `yaml:"neg_output_params" json:"neg_output_params,omitempty" validate:"dive"`
}

// ProgCode points at the code artifact implementing a single ECU job.
type ProgCode struct {
	CodeFile    string   `yaml:"code_file" json:"code_file" validate:"required"`
	Encryption  string   `yaml:"encryption" json:"encryption,omitempty"`
	Syntax      string   `yaml:"syntax" json:"syntax" validate:"required"`
	Revision    string   `yaml:"revision" json:"revision" validate:"required"`
	Entrypoint  string   `yaml:"entrypoint" json:"entrypoint,omitempty"`
	LibraryRefs []string `yaml:"library_refs" json:"library_refs,omitempty"`
}

// JobParam is an input, output or negative-output parameter of a single
// ECU job. ID and Semantic are only meaningful for output params;
// PhysicalDefaultValue only for input params.
type JobParam struct {
	ID                   string `yaml:"id" json:"id,omitempty"`
	Semantic             string `yaml:"semantic" json:"semantic,omitempty"`
	ShortName            string `yaml:"short_name" json:"short_name" validate:"required"`
	LongName             string `yaml:"long_name" json:"long_name,omitempty"`
	Description          string `yaml:"description" json:"description,omitempty"`
	PhysicalDefaultValue string `yaml:"physical_default_value" json:"physical_default_value,omitempty"`
	DopBaseRef           string `yaml:"dop_base_ref" json:"dop_base_ref" validate:"required"`
}
