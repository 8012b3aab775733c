package wrapper

// Boxed carriers for each primitive kind. OBJECT uses any.
type (
	Boolean bool
	Byte    int8
	Short   int16
	Char    uint16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
	Void    struct{}
)
