package ids

type UserID = int32
