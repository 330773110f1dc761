package deck

const (
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsOfficeRels    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Parts of the PresentationML package. The master and layouts carry the
// placeholders that slides bind to; slides always override the frame.
const xmlTemplates = `
{{- define "decl"}}<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
{{end -}}

{{- define "ns"}}xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"{{end -}}

{{- define "contentTypes"}}{{template "decl"}}<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Default Extension="png" ContentType="image/png"/>
<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
{{- range $i, $s := .Slides}}
<Override PartName="/ppt/slides/slide{{add $i 1}}.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
{{- end}}
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
<Override PartName="/ppt/presProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"/>
<Override PartName="/ppt/viewProps.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>{{end -}}

{{- define "rootRels"}}{{template "decl"}}<Relationships xmlns="` + nsRelationships + `">
<Relationship Id="rId1" Type="` + nsOfficeRels + `/officeDocument" Target="ppt/presentation.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="` + nsOfficeRels + `/extended-properties" Target="docProps/app.xml"/>
</Relationships>{{end -}}

{{- define "app"}}{{template "decl"}}<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"><Application>slidecraft</Application><Slides>{{len .Slides}}</Slides></Properties>{{end -}}

{{- define "core"}}{{template "decl"}}<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><dc:title>{{esc .Title}}</dc:title><dc:creator>slidecraft</dc:creator></cp:coreProperties>{{end -}}

{{- define "presentation"}}{{template "decl"}}<p:presentation {{template "ns"}} saveSubsetFonts="1">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
{{- if .Slides}}
<p:sldIdLst>{{range $i, $s := .Slides}}<p:sldId id="{{add $i 256}}" r:id="rId{{add $i 5}}"/>{{end}}</p:sldIdLst>
{{- end}}
<p:sldSz cx="{{.Width}}" cy="{{.Height}}"/>
<p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>{{end -}}

{{- define "presentationRels"}}{{template "decl"}}<Relationships xmlns="` + nsRelationships + `">
<Relationship Id="rId1" Type="` + nsOfficeRels + `/slideMaster" Target="slideMasters/slideMaster1.xml"/>
<Relationship Id="rId2" Type="` + nsOfficeRels + `/theme" Target="theme/theme1.xml"/>
<Relationship Id="rId3" Type="` + nsOfficeRels + `/presProps" Target="presProps.xml"/>
<Relationship Id="rId4" Type="` + nsOfficeRels + `/viewProps" Target="viewProps.xml"/>
{{- range $i, $s := .Slides}}
<Relationship Id="rId{{add $i 5}}" Type="` + nsOfficeRels + `/slide" Target="slides/slide{{add $i 1}}.xml"/>
{{- end}}
</Relationships>{{end -}}

{{- define "presProps"}}{{template "decl"}}<p:presentationPr {{template "ns"}}/>{{end -}}

{{- define "viewProps"}}{{template "decl"}}<p:viewPr {{template "ns"}}><p:gridSpacing cx="76200" cy="76200"/></p:viewPr>{{end -}}

{{- define "theme"}}{{template "decl"}}<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme"><a:themeElements>
<a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="1F497D"/></a:dk2><a:lt2><a:srgbClr val="EEECE1"/></a:lt2><a:accent1><a:srgbClr val="4F81BD"/></a:accent1><a:accent2><a:srgbClr val="C0504D"/></a:accent2><a:accent3><a:srgbClr val="9BBB59"/></a:accent3><a:accent4><a:srgbClr val="8064A2"/></a:accent4><a:accent5><a:srgbClr val="4BACC6"/></a:accent5><a:accent6><a:srgbClr val="F79646"/></a:accent6><a:hlink><a:srgbClr val="0000FF"/></a:hlink><a:folHlink><a:srgbClr val="800080"/></a:folHlink></a:clrScheme>
<a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>
<a:fmtScheme name="Office">
<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>
<a:lnStyleLst><a:ln w="9525"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="25400"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="38100"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>
<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>
<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>
</a:fmtScheme></a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>{{end -}}

{{- define "grpSpPr"}}<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>{{end -}}

{{- define "ph"}}{{if eq (print .) "body"}}<p:ph idx="1"/>{{else if eq (print .) "subTitle"}}<p:ph type="subTitle" idx="1"/>{{else}}<p:ph type="{{.}}"/>{{end}}{{end -}}

{{- define "placeholder"}}<p:sp><p:nvSpPr><p:cNvPr id="{{.ID}}" name="{{.Name}}"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>{{template "ph" .Kind}}</p:nvPr></p:nvSpPr><p:spPr><a:xfrm><a:off x="{{.Frame.X}}" y="{{.Frame.Y}}"/><a:ext cx="{{.Frame.W}}" cy="{{.Frame.H}}"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="en-US"/></a:p></p:txBody></p:sp>{{end -}}

{{- define "slideMaster"}}{{template "decl"}}<p:sldMaster {{template "ns"}}><p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>{{template "grpSpPr"}}
{{- range masterPlaceholders}}{{template "placeholder" .}}{{end -}}
</p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/><p:sldLayoutId id="2147483650" r:id="rId2"/></p:sldLayoutIdLst>
<p:txStyles>
<p:titleStyle><a:lvl1pPr algn="ctr"><a:defRPr sz="4400"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mj-lt"/></a:defRPr></a:lvl1pPr></p:titleStyle>
<p:bodyStyle><a:lvl1pPr marL="342900" indent="-342900"><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/><a:defRPr sz="3200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/></a:defRPr></a:lvl1pPr></p:bodyStyle>
<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:otherStyle>
</p:txStyles></p:sldMaster>{{end -}}

{{- define "slideMasterRels"}}{{template "decl"}}<Relationships xmlns="` + nsRelationships + `">
<Relationship Id="rId1" Type="` + nsOfficeRels + `/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="` + nsOfficeRels + `/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
<Relationship Id="rId3" Type="` + nsOfficeRels + `/theme" Target="../theme/theme1.xml"/>
</Relationships>{{end -}}

{{- define "titleLayout"}}{{template "decl"}}<p:sldLayout {{template "ns"}} type="title" preserve="1"><p:cSld name="Title Slide"><p:spTree>{{template "grpSpPr"}}
{{- range titleLayoutPlaceholders}}{{template "placeholder" .}}{{end -}}
</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>{{end -}}

{{- define "contentLayout"}}{{template "decl"}}<p:sldLayout {{template "ns"}} type="obj" preserve="1"><p:cSld name="Title and Content"><p:spTree>{{template "grpSpPr"}}
{{- range masterPlaceholders}}{{template "placeholder" .}}{{end -}}
</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>{{end -}}

{{- define "layoutRels"}}{{template "decl"}}<Relationships xmlns="` + nsRelationships + `">
<Relationship Id="rId1" Type="` + nsOfficeRels + `/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>{{end -}}

{{- define "textShape"}}{{$font := .Text.Font}}{{$ctr := .Text.Centered -}}
<p:sp><p:nvSpPr><p:cNvPr id="{{.ID}}" name="{{esc .Text.Name}} {{add .ID -1}}"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>{{template "ph" .Text.Placeholder}}</p:nvPr></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="{{.Text.Frame.X}}" y="{{.Text.Frame.Y}}"/><a:ext cx="{{.Text.Frame.W}}" cy="{{.Text.Frame.H}}"/></a:xfrm></p:spPr>
<p:txBody><a:bodyPr><a:normAutofit/></a:bodyPr><a:lstStyle/>
{{- range .Text.Paragraphs}}<a:p>{{if $ctr}}<a:pPr algn="ctr"/>{{end}}<a:r><a:rPr lang="en-US" sz="{{sz $font.Size}}" b="{{flag $font.Bold}}" dirty="0"><a:latin typeface="{{esc $font.Family}}"/></a:rPr><a:t>{{esc .}}</a:t></a:r></a:p>
{{- else}}<a:p><a:endParaRPr lang="en-US" sz="{{sz $font.Size}}" dirty="0"><a:latin typeface="{{esc $font.Family}}"/></a:endParaRPr></a:p>
{{- end}}</p:txBody></p:sp>
{{end -}}

{{- define "picShape" -}}
<p:pic><p:nvPicPr><p:cNvPr id="{{.ID}}" name="{{esc .Picture.Name}} {{add .ID -1}}"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>
<p:blipFill><a:blip r:embed="{{.RelID}}"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>
<p:spPr><a:xfrm><a:off x="{{.Picture.Frame.X}}" y="{{.Picture.Frame.Y}}"/><a:ext cx="{{.Picture.Frame.W}}" cy="{{.Picture.Frame.H}}"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>
{{end -}}

{{- define "slide"}}{{template "decl"}}<p:sld {{template "ns"}}><p:cSld><p:spTree>{{template "grpSpPr"}}
{{range .Shapes}}{{if .Text}}{{template "textShape" .}}{{else}}{{template "picShape" .}}{{end}}{{end -}}
</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>{{end -}}

{{- define "slideRels"}}{{template "decl"}}<Relationships xmlns="` + nsRelationships + `">
<Relationship Id="rId1" Type="` + nsOfficeRels + `/slideLayout" Target="../slideLayouts/slideLayout{{.Layout}}.xml"/>
{{- range .Media}}
<Relationship Id="{{.ID}}" Type="` + nsOfficeRels + `/image" Target="../media/{{.Name}}"/>
{{- end}}
</Relationships>{{end -}}
`
