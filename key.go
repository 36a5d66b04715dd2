package deeplink

// Key names a path or query slot. A plain string works, as does a typed
// string constant:
//
//	type productKey string
//
//	const productID productKey = "product_id"
type Key interface {
	~string
}
