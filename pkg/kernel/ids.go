package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type SeekerID string

func NewSeekerID(id string) SeekerID { return SeekerID(id) }
func (s SeekerID) String() string    { return string(s) }
func (s SeekerID) IsEmpty() bool     { return string(s) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type MessageID string

func NewMessageID(id string) MessageID { return MessageID(id) }
func (m MessageID) String() string     { return string(m) }
func (m MessageID) IsEmpty() bool      { return string(m) == "" }
