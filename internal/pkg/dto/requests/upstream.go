package requests

import "io"

// UpstreamSignup is the multipart body of POST /auth/signup.
type UpstreamSignup struct {
	FirstName   string
	LastName    string
	MobileNo    string
	Email       string
	ContactType string
	UserType    string
	Password    string
	IDDocument  *UploadedFile
	FaceImage   *UploadedFile
}

// DocumentPart is one file of POST /user/upload/:userId. Content is read
// once while the multipart body streams.
type DocumentPart struct {
	FileName    string
	ContentType string
	Category    string
	Size        int64
	Content     io.Reader
}

type IdentifyInput struct {
	Photo  *UploadedFile
	Frame  *UploadedFile
	QRText string
	Query  string
}
