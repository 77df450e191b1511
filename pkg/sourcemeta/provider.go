package sourcemeta

// Provider is implemented by anything that can describe its own deployed
// version and source link.
//
// ContractSourceMetadata takes no arguments and must not have side effects:
// it reports intrinsic, already-known values, typically hardcoded or fixed at
// build time. Calling it twice on an unchanged provider returns equal values.
type Provider interface {
	ContractSourceMetadata() Metadata
}

// ProviderFunc adapts an ordinary function to the [Provider] interface.
type ProviderFunc func() Metadata

// ContractSourceMetadata calls f.
func (f ProviderFunc) ContractSourceMetadata() Metadata { return f() }

type staticProvider struct{ m Metadata }

func (s staticProvider) ContractSourceMetadata() Metadata { return s.m }

// Static returns a Provider that always reports m.
func Static(m Metadata) Provider { return staticProvider{m: m} }

// Describe returns p's metadata, or the zero Metadata if p is nil.
func Describe(p Provider) Metadata {
	if p == nil {
		return Metadata{}
	}
	return p.ContractSourceMetadata()
}
