package unique

// noCopy makes go vet's copylocks check reject copies of the handles that
// embed it. A copied handle would be a second owner.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
