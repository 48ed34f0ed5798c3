package brandtest

// Tags shared by tests. Each is a distinct discriminant.
type (
	TestIDTag  struct{}
	OtherIDTag struct{}
	NameTag    struct{}
	ScoreTag   struct{}
	TokenTag   struct{}
)

func (TestIDTag) BrandName() string  { return "TestID" }
func (OtherIDTag) BrandName() string { return "OtherID" }
func (NameTag) BrandName() string    { return "Name" }
func (ScoreTag) BrandName() string   { return "Score" }
func (TokenTag) BrandName() string   { return "Token" }
