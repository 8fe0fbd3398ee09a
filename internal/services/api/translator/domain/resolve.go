package domain

import "net/http"

// Chain returns the first defined value produced by resolvers, in order
func Chain(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, bool) {
		for _, res := range resolvers {
			if v, ok := res(r); ok {
				return v, true
			}
		}
		return "", false
	}
}

// Header resolves the first value of an inbound header
func Header(name string) Resolver {
	key := http.CanonicalHeaderKey(name)
	return func(r *http.Request) (string, bool) {
		vv := r.Header[key]
		if len(vv) == 0 {
			return "", false
		}
		return vv[0], true
	}
}

// Lookuper reports whether a configuration key is set
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// Config resolves a configuration variable, read on every call
func Config(c Lookuper, key string) Resolver {
	return func(*http.Request) (string, bool) { return c.Lookup(key) }
}

// Const always resolves to v
func Const(v string) Resolver {
	return func(*http.Request) (string, bool) { return v, true }
}

// Resolve applies one resolver per parameter; nil resolvers leave the parameter undefined
func Resolve(r *http.Request, lookupURL, authorization, hashKey Resolver) RequestParameters {
	return RequestParameters{
		LookupURL:     eval(lookupURL, r),
		Authorization: eval(authorization, r),
		HashKey:       eval(hashKey, r),
	}
}

func eval(res Resolver, r *http.Request) *string {
	if res == nil {
		return nil
	}
	v, ok := res(r)
	if !ok {
		return nil
	}
	return &v
}
