package serializer

// NewURLSafe creates a [Serializer] whose tokens are safe to embed in URL
// paths, query strings, cookies, and email links without escaping.  It is
// [New] with [URLSafeTransform] installed; later options may still override
// the codec, salt, or signer configuration.
func NewURLSafe(secretKey []byte, opts ...Option) (*Serializer, error) {
	return New(secretKey, urlSafeOpts(opts)...)
}

// NewURLSafeTimed creates a [TimedSerializer] with the same URL-safe
// payload encoding as [NewURLSafe].
func NewURLSafeTimed(secretKey []byte, opts ...Option) (*TimedSerializer, error) {
	return NewTimed(secretKey, urlSafeOpts(opts)...)
}

// urlSafeOpts prepends the shared transform so both URL-safe flavors
// delegate to one implementation.
func urlSafeOpts(opts []Option) []Option {
	out := make([]Option, 0, 1+len(opts))
	out = append(out, WithTransform(URLSafeTransform{}))
	out = append(out, opts...)
	return out
}
